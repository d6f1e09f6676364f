package controllers

import (
	"net/http"

	"github.com/blogapp/blogapp_backend/internal/middlewares"
	"github.com/blogapp/blogapp_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
	blogService services.BlogService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService, blogService services.BlogService) *UserController {
	return &UserController{
		userService: userService,
		blogService: blogService,
	}
}

// GetProfile ログイン中ユーザーのプロフィール（投稿数・コメント数を含む）を取得
func (c *UserController) GetProfile(ctx *gin.Context) {
	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "ログインが必要です"})
		return
	}

	profile, err := c.userService.GetProfile(identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetMyBlogs ログイン中ユーザーのブログ記事一覧を取得
func (c *UserController) GetMyBlogs(ctx *gin.Context) {
	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "ログインが必要です"})
		return
	}

	blogs, err := c.blogService.ListByUser(identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"blogs": blogs})
}
