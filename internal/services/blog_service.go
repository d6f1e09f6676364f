package services

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// タイトルと本文の最小文字数
const (
	minTitleLength   = 5
	minContentLength = 50
)

// BlogService ブログ記事に関するサービスインターフェース
type BlogService interface {
	Create(userID uint, title, content string, headerImage multipart.File, headerHeader *multipart.FileHeader) (*models.Blog, error)
	GetByID(id uint) (*models.Blog, error)
	List() ([]models.Blog, error)
	ListByUser(userID uint) ([]models.Blog, error)
	Delete(id, requesterID uint) error
}

// blogService BlogServiceの実装
type blogService struct {
	blogRepo    repository.BlogRepository
	fileService FileService
}

// NewBlogService BlogServiceを作成
func NewBlogService(blogRepo repository.BlogRepository, fileService FileService) BlogService {
	return &blogService{
		blogRepo:    blogRepo,
		fileService: fileService,
	}
}

// Create 新しいブログ記事を作成
func (s *blogService) Create(userID uint, title, content string, headerImage multipart.File, headerHeader *multipart.FileHeader) (*models.Blog, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	// バリデーション
	if title == "" || content == "" {
		return nil, apperrors.New(apperrors.KindValidation, "必須項目をすべて入力してください")
	}
	if len(title) < minTitleLength {
		return nil, apperrors.Validationf("タイトルは%d文字以上で入力してください", minTitleLength)
	}
	if len(content) < minContentLength {
		return nil, apperrors.Validationf("本文は%d文字以上で入力してください", minContentLength)
	}

	// ヘッダー画像をアップロード（任意）
	var headerImageName string
	if headerImage != nil {
		fileName, err := s.fileService.Upload(headerImage, headerHeader, UploadKindBlogHeader)
		if err != nil {
			return nil, err
		}
		headerImageName = fileName
	}

	blog := &models.Blog{
		UserID:      userID,
		Title:       title,
		Content:     content,
		HeaderImage: headerImageName,
	}

	if err := s.blogRepo.Create(blog); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログの保存に失敗しました", err)
	}

	// 著者情報を含めて再取得
	return s.GetByID(blog.ID)
}

// GetByID IDでブログ記事を取得
func (s *blogService) GetByID(id uint) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "ブログが見つかりません")
		}
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログの取得に失敗しました", err)
	}
	return blog, nil
}

// List 全ブログ記事を新着順で取得
func (s *blogService) List() ([]models.Blog, error) {
	blogs, err := s.blogRepo.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログ一覧の取得に失敗しました", err)
	}
	return blogs, nil
}

// ListByUser ユーザーのブログ記事一覧を新着順で取得
func (s *blogService) ListByUser(userID uint) ([]models.Blog, error) {
	blogs, err := s.blogRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログ一覧の取得に失敗しました", err)
	}
	return blogs, nil
}

// Delete ブログ記事を削除。紐づくコメントも同一トランザクションで削除し、
// ヘッダー画像があればファイルも削除する
func (s *blogService) Delete(id, requesterID uint) error {
	// 所有権の判定に先立ってリソースを解決する
	blog, err := s.GetByID(id)
	if err != nil {
		return err
	}

	// 権限チェック（所有者IDはデータベースの値を使う）
	if blog.UserID != requesterID {
		return apperrors.New(apperrors.KindForbidden, "このブログを削除する権限がありません")
	}

	if err := s.blogRepo.DeleteWithComments(id); err != nil {
		return apperrors.Wrap(apperrors.KindStore, "ブログの削除に失敗しました", err)
	}

	// ヘッダー画像の削除は失敗しても処理を止めない。データベースが正であり、
	// 残骸ファイルは許容する
	if blog.HeaderImage != "" {
		if err := s.fileService.Delete(blog.HeaderImage); err != nil {
			logrus.WithFields(logrus.Fields{
				"blog_id": id,
				"file":    blog.HeaderImage,
			}).WithError(err).Warn("ヘッダー画像の削除に失敗しました")
		}
	}

	return nil
}
