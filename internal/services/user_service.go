package services

import (
	"errors"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"gorm.io/gorm"
)

// Profile プロフィール表示用の集計結果
type Profile struct {
	User         *models.User `json:"user"`
	BlogCount    int64        `json:"blog_count"`
	CommentCount int64        `json:"comment_count"`
}

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetByID(id uint) (*models.User, error)
	GetProfile(userID uint) (*Profile, error)
}

// userService UserServiceの実装
type userService struct {
	userRepo    repository.UserRepository
	blogRepo    repository.BlogRepository
	commentRepo repository.CommentRepository
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository, blogRepo repository.BlogRepository, commentRepo repository.CommentRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
	}
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "ユーザーが見つかりません")
		}
		return nil, apperrors.Wrap(apperrors.KindStore, "ユーザーの取得に失敗しました", err)
	}
	return user, nil
}

// GetProfile ユーザー情報と投稿数・コメント数を取得
func (s *userService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	blogCount, err := s.blogRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "ブログ数の取得に失敗しました", err)
	}

	commentCount, err := s.commentRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "コメント数の取得に失敗しました", err)
	}

	return &Profile{
		User:         user,
		BlogCount:    blogCount,
		CommentCount: commentCount,
	}, nil
}
