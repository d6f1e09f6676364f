package repository

import (
	"github.com/blogapp/blogapp_backend/internal/models"

	"gorm.io/gorm"
)

// BlogRepository ブログ記事に関するデータベース操作を行うインターフェース
type BlogRepository interface {
	Create(blog *models.Blog) error
	FindByID(id uint) (*models.Blog, error)
	List() ([]models.Blog, error)
	ListByUser(userID uint) ([]models.Blog, error)
	DeleteWithComments(id uint) error
	CountByUser(userID uint) (int64, error)
}

// blogRepository BlogRepositoryの実装
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository BlogRepositoryを作成
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create 新しいブログ記事を作成
func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// FindByID IDでブログ記事を検索（著者情報を含む）
func (r *blogRepository) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Preload("User").First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// List 全ブログ記事を新着順で取得
func (r *blogRepository) List() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListByUser ユーザーのブログ記事一覧を新着順で取得
func (r *blogRepository) ListByUser(userID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// DeleteWithComments ブログ記事と紐づくコメントをトランザクションで削除
func (r *blogRepository) DeleteWithComments(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, id).Error
	})
}

// CountByUser ユーザーのブログ記事数を取得
func (r *blogRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Blog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
