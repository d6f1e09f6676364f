package services

import (
	"errors"
	"sync"
	"time"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/config"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/utils"

	"github.com/dgrijalva/jwt-go"
)

// FlashTypeSuccess / FlashTypeError フラッシュメッセージの種別
const (
	FlashTypeSuccess = "success"
	FlashTypeError   = "error"
)

// Identity セッションに紐づくログイン中ユーザーの情報
type Identity struct {
	UserID       uint   `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// Flash 一度だけ表示されるメッセージ
type Flash struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SessionService クライアントごとのログイン状態を管理するサービスインターフェース
type SessionService interface {
	Establish(user *models.User) (string, error)
	Current(token string) (*Identity, error)
	Clear(token string)
	SetFlash(token, message, flashType string)
	TakeFlash(token string) *Flash
}

// sessionRecord サーバー側に保持するセッションの実体
type sessionRecord struct {
	identity Identity
	flash    *Flash
}

// sessionClaims セッショントークンのペイロード
type sessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.StandardClaims
}

// sessionService SessionServiceの実装
type sessionService struct {
	config   *config.Config
	mu       sync.RWMutex
	sessions map[string]*sessionRecord
}

// NewSessionService SessionServiceを作成
func NewSessionService(cfg *config.Config) SessionService {
	return &sessionService{
		config:   cfg,
		sessions: make(map[string]*sessionRecord),
	}
}

// Establish ユーザーをセッションに紐づけ、署名済みトークンを返す
func (s *sessionService) Establish(user *models.User) (string, error) {
	sessionID := utils.GenerateRandomString(32)

	s.mu.Lock()
	s.sessions[sessionID] = &sessionRecord{
		identity: Identity{
			UserID:       user.ID,
			FullName:     user.FullName,
			Email:        user.Email,
			ProfileImage: user.ProfileImage,
		},
	}
	s.mu.Unlock()

	expirationTime := time.Now().Add(s.config.Auth.TokenExpiry)
	claims := &sessionClaims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		// 署名できなければセッションも残さない
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return "", err
	}

	return tokenString, nil
}

// Current トークンに紐づくログイン中ユーザーを返す
func (s *sessionService) Current(token string) (*Identity, error) {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return nil, apperrors.New(apperrors.KindNotAuthenticated, "ログインが必要です")
	}

	s.mu.RLock()
	record, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.New(apperrors.KindNotAuthenticated, "ログインが必要です")
	}

	identity := record.identity
	return &identity, nil
}

// Clear セッションを破棄する（ログアウト）
func (s *sessionService) Clear(token string) {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// SetFlash セッションにフラッシュメッセージを設定
func (s *sessionService) SetFlash(token, message, flashType string) {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	if record, ok := s.sessions[sessionID]; ok {
		record.flash = &Flash{Message: message, Type: flashType}
	}
	s.mu.Unlock()
}

// TakeFlash フラッシュメッセージを取り出す。取り出しは一度きりで、
// 二度目以降はnilを返す
func (s *sessionService) TakeFlash(token string) *Flash {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[sessionID]
	if !ok || record.flash == nil {
		return nil
	}

	flash := record.flash
	record.flash = nil
	return flash
}

// parseSessionID トークンを検証してセッションIDを取り出す
func (s *sessionService) parseSessionID(tokenString string) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid token")
	}

	return claims.SessionID, nil
}
