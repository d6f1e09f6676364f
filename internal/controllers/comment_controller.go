package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogapp/blogapp_backend/internal/middlewares"
	"github.com/blogapp/blogapp_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CommentController コメントに関するコントローラー
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController CommentControllerを作成
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CommentRequest コメント投稿リクエスト
type CommentRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}

// Create 新しいコメントを作成
func (c *CommentController) Create(ctx *gin.Context) {
	blogID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, ok := middlewares.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "ログインが必要です"})
		return
	}

	comment, err := c.commentService.Create(identity.UserID, uint(blogID), req.CommentText)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// List ブログ記事のコメント一覧を取得（認証必須ルートの内側でのみ公開）
func (c *CommentController) List(ctx *gin.Context) {
	blogID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	comments, err := c.commentService.ListByBlog(uint(blogID))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Delete コメントを削除
func (c *CommentController) Delete(ctx *gin.Context) {
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

	if err := c.commentService.Delete(uint(id), identity.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
