package services

import (
	"errors"
	"strings"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"gorm.io/gorm"
)

// CommentService コメントに関するサービスインターフェース
type CommentService interface {
	Create(userID, blogID uint, commentText string) (*models.Comment, error)
	ListByBlog(blogID uint) ([]models.Comment, error)
	Delete(id, requesterID uint) error
}

// commentService CommentServiceの実装
type commentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
}

// NewCommentService CommentServiceを作成
func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
	}
}

// Create 新しいコメントを作成
func (s *commentService) Create(userID, blogID uint, commentText string) (*models.Comment, error) {
	// コンテンツのバリデーション
	if strings.TrimSpace(commentText) == "" {
		return nil, apperrors.New(apperrors.KindValidation, "コメント内容は必須です")
	}

	// ブログが存在するか確認
	if _, err := s.blogRepo.FindByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "ブログが見つかりません")
		}
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログの取得に失敗しました", err)
	}

	comment := &models.Comment{
		UserID:      userID,
		BlogID:      blogID,
		CommentText: commentText,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "コメントの保存に失敗しました", err)
	}

	// 投稿者情報を含めて再取得
	created, err := s.commentRepo.FindByID(comment.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "コメントの取得に失敗しました", err)
	}
	return created, nil
}

// ListByBlog ブログ記事のコメント一覧を新着順で取得。
// 認証境界の内側からのみ呼び出されることを前提とする
func (s *commentService) ListByBlog(blogID uint) ([]models.Comment, error) {
	// ブログが存在するか確認
	if _, err := s.blogRepo.FindByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "ブログが見つかりません")
		}
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログの取得に失敗しました", err)
	}

	comments, err := s.commentRepo.ListByBlog(blogID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "コメント一覧の取得に失敗しました", err)
	}
	return comments, nil
}

// Delete コメントを削除
func (s *commentService) Delete(id, requesterID uint) error {
	// 所有権の判定に先立ってリソースを解決する
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "コメントが見つかりません")
		}
		return apperrors.Wrap(apperrors.KindStore, "コメントの取得に失敗しました", err)
	}

	// 権限チェック
	if comment.UserID != requesterID {
		return apperrors.New(apperrors.KindForbidden, "このコメントを削除する権限がありません")
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return apperrors.Wrap(apperrors.KindStore, "コメントの削除に失敗しました", err)
	}
	return nil
}
