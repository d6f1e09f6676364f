package controllers

import (
	"fmt"
	"net/http"

	"github.com/blogapp/blogapp_backend/internal/middlewares"
	"github.com/blogapp/blogapp_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService    services.AuthService
	sessionService services.SessionService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService, sessionService services.SessionService) *AuthController {
	return &AuthController{
		authService:    authService,
		sessionService: sessionService,
	}
}

// RegisterRequest ユーザー登録リクエスト（multipart form）
type RegisterRequest struct {
	FullName        string `form:"full_name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
	Phone           string `form:"phone"`
	Bio             string `form:"bio"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 認証レスポンス
type AuthResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// Register ユーザー登録
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		Bio:             req.Bio,
	}

	// プロフィール画像は任意
	if file, header, err := ctx.Request.FormFile("profile_image"); err == nil {
		defer file.Close()
		input.ProfileImage = file
		input.ProfileHeader = header
	}

	user, err := c.authService.Register(input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"message": "アカウントを作成しました。ログインしてください",
	})
}

// Login ログイン
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// セッションを確立
	token, err := c.sessionService.Establish(user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// 次の画面で一度だけ表示されるウェルカムメッセージ
	c.sessionService.SetFlash(token, fmt.Sprintf("おかえりなさい、%sさん！", user.FullName), services.FlashTypeSuccess)

	ctx.JSON(http.StatusOK, AuthResponse{
		User:  user,
		Token: token,
	})
}

// Logout ログアウト
func (c *AuthController) Logout(ctx *gin.Context) {
	c.sessionService.Clear(middlewares.SessionToken(ctx))
	ctx.Status(http.StatusNoContent)
}

// GetMe 現在のユーザー情報を取得
func (c *AuthController) GetMe(ctx *gin.Context) {
	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "ログインが必要です"})
		return
	}

	ctx.JSON(http.StatusOK, identity)
}

// GetFlash フラッシュメッセージを取り出す。二度目の呼び出しはnullを返す
func (c *AuthController) GetFlash(ctx *gin.Context) {
	flash := c.sessionService.TakeFlash(middlewares.SessionToken(ctx))
	ctx.JSON(http.StatusOK, gin.H{"flash": flash})
}
