package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogapp/blogapp_backend/internal/middlewares"
	"github.com/blogapp/blogapp_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// BlogController ブログ記事に関するコントローラー
type BlogController struct {
	blogService    services.BlogService
	sessionService services.SessionService
}

// NewBlogController BlogControllerを作成
func NewBlogController(blogService services.BlogService, sessionService services.SessionService) *BlogController {
	return &BlogController{
		blogService:    blogService,
		sessionService: sessionService,
	}
}

// BlogRequest ブログ投稿リクエスト（multipart form）
type BlogRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// List ブログ記事一覧を取得
func (c *BlogController) List(ctx *gin.Context) {
	blogs, err := c.blogService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// GetByID ブログ記事を取得
func (c *BlogController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	blog, err := c.blogService.GetByID(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"blog": blog})
}

// Create 新しいブログ記事を作成
func (c *BlogController) Create(ctx *gin.Context) {
	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "ログインが必要です"})
		return
	}

	var req BlogRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ヘッダー画像は任意
	file, header, err := ctx.Request.FormFile("header_image")
	if err != nil {
		file = nil
		header = nil
	} else {
		defer file.Close()
	}

	blog, err := c.blogService.Create(identity.UserID, req.Title, req.Content, file, header)
	if err != nil {
		respondError(ctx, err)
		return
	}

	c.sessionService.SetFlash(middlewares.SessionToken(ctx), "ブログを公開しました！", services.FlashTypeSuccess)

	ctx.JSON(http.StatusCreated, gin.H{"blog": blog})
}

// Delete ブログ記事を削除
func (c *BlogController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "ログインが必要です"})
		return
	}

	if err := c.blogService.Delete(uint(id), identity.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	c.sessionService.SetFlash(middlewares.SessionToken(ctx), "ブログを削除しました", services.FlashTypeSuccess)

	ctx.Status(http.StatusNoContent)
}
