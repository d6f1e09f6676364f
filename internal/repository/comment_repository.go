package repository

import (
	"github.com/blogapp/blogapp_backend/internal/models"

	"gorm.io/gorm"
)

// CommentRepository コメントに関するデータベース操作を行うインターフェース
type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	Delete(id uint) error
	ListByBlog(blogID uint) ([]models.Comment, error)
	CountByBlog(blogID uint) (int64, error)
	CountByUser(userID uint) (int64, error)
}

// commentRepository CommentRepositoryの実装
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository CommentRepositoryを作成
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 新しいコメントを作成
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID IDでコメントを検索（投稿者情報を含む）
func (r *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete コメントを削除
func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// ListByBlog ブログ記事のコメント一覧を新着順で取得
func (r *commentRepository) ListByBlog(blogID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByBlog ブログ記事のコメント数を取得
func (r *commentRepository) CountByBlog(blogID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("blog_id = ?", blogID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByUser ユーザーのコメント数を取得
func (r *commentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
