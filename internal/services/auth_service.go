package services

import (
	"errors"
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput ユーザー登録の入力
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Bio             string
	ProfileImage    multipart.File
	ProfileHeader   *multipart.FileHeader
}

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo    repository.UserRepository
	fileService FileService
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, fileService FileService) AuthService {
	return &authService{
		userRepo:    userRepo,
		fileService: fileService,
	}
}

// Register ユーザー登録
func (s *authService) Register(input RegisterInput) (*models.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)

	// バリデーション（元のフォームと同じ判定順）
	if fullName == "" || email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, apperrors.New(apperrors.KindValidation, "必須項目をすべて入力してください")
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperrors.New(apperrors.KindValidation, "パスワードが一致しません")
	}
	if len(input.Password) < 6 {
		return nil, apperrors.New(apperrors.KindValidation, "パスワードは6文字以上で入力してください")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.New(apperrors.KindValidation, "メールアドレスの形式が正しくありません")
	}

	// メールアドレスが既に使用されているか確認
	existingUser, err := s.userRepo.FindByEmail(email)
	if err == nil && existingUser != nil {
		return nil, apperrors.New(apperrors.KindDuplicateEmail, "このメールアドレスは既に登録されています")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.KindStore, "ユーザーの検索に失敗しました", err)
	}

	// プロフィール画像をアップロード（任意）
	profileImage := models.DefaultProfileImage
	if input.ProfileImage != nil {
		fileName, err := s.fileService.Upload(input.ProfileImage, input.ProfileHeader, UploadKindProfile)
		if err != nil {
			return nil, err
		}
		profileImage = fileName
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStore, "パスワードのハッシュ化に失敗しました", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        strings.TrimSpace(input.Phone),
		Bio:          strings.TrimSpace(input.Bio),
		ProfileImage: profileImage,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 同時登録との競合はユニーク制約で検出する
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.KindDuplicateEmail, "このメールアドレスは既に登録されています")
		}
		return nil, apperrors.Wrap(apperrors.KindStore, "ユーザーの作成に失敗しました", err)
	}

	return user, nil
}

// Login ログイン
func (s *authService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNoSuchAccount, "このメールアドレスのアカウントが見つかりません")
		}
		return nil, apperrors.Wrap(apperrors.KindStore, "ユーザーの検索に失敗しました", err)
	}

	// パスワードを検証（bcryptの比較は一定時間で行われる）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.KindBadPassword, "パスワードが正しくありません")
	}

	return user, nil
}
