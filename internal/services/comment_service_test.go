package services

import (
	"testing"
	"time"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newCommentFixture コメントサービスとテスト用のブログを作成
func newCommentFixture(t *testing.T) (*gorm.DB, CommentService, *models.User, *models.Blog) {
	db := newTestDB(t)
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewBlogRepository(db))

	author := createTestUser(t, db, "Taro", "taro@example.com")
	blog := &models.Blog{UserID: author.ID, Title: "Hello World", Content: longContent}
	require.NoError(t, repository.NewBlogRepository(db).Create(blog))

	return db, svc, author, blog
}

func TestCreateComment(t *testing.T) {
	db, svc, _, blog := newCommentFixture(t)
	commenter := createTestUser(t, db, "Hanako", "hanako@example.com")

	comment, err := svc.Create(commenter.ID, blog.ID, "nice post")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	require.NotNil(t, comment.User)
	assert.Equal(t, "Hanako", comment.User.FullName)

	// 空白のみのコメントは拒否
	_, err = svc.Create(commenter.ID, blog.ID, "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// 存在しないブログへのコメントはNotFound
	_, err = svc.Create(commenter.ID, 9999, "nice post")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestCreateDuplicateComments(t *testing.T) {
	db, svc, _, blog := newCommentFixture(t)
	commenter := createTestUser(t, db, "Hanako", "hanako@example.com")

	// 同一内容のコメントを重複して投稿できる
	for i := 0; i < 2; i++ {
		_, err := svc.Create(commenter.ID, blog.ID, "same text")
		require.NoError(t, err)
	}

	comments, err := svc.ListByBlog(blog.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestListCommentsNewestFirst(t *testing.T) {
	db, svc, _, blog := newCommentFixture(t)
	commenter := createTestUser(t, db, "Hanako", "hanako@example.com")

	commentRepo := repository.NewCommentRepository(db)
	now := time.Now()
	for i, text := range []string{"oldest", "middle", "newest"} {
		comment := &models.Comment{UserID: commenter.ID, BlogID: blog.ID, CommentText: text}
		require.NoError(t, commentRepo.Create(comment))
		createdAt := now.Add(time.Duration(i-3) * time.Hour)
		require.NoError(t, db.Model(comment).Update("created_at", createdAt).Error)
	}

	comments, err := svc.ListByBlog(blog.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "newest", comments[0].CommentText)
	assert.Equal(t, "oldest", comments[2].CommentText)

	// 存在しないブログはNotFound
	_, err = svc.ListByBlog(9999)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteCommentOwnership(t *testing.T) {
	db, svc, author, blog := newCommentFixture(t)
	commenter := createTestUser(t, db, "Hanako", "hanako@example.com")

	comment, err := svc.Create(commenter.ID, blog.ID, "nice post")
	require.NoError(t, err)

	// ブログの著者でもコメントの所有者でなければ削除できない
	err = svc.Delete(comment.ID, author.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	comments, err := svc.ListByBlog(blog.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	// 存在しないコメントはNotFound（Forbiddenとは区別される）
	err = svc.Delete(9999, commenter.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// 所有者は削除できる
	require.NoError(t, svc.Delete(comment.ID, commenter.ID))

	comments, err = svc.ListByBlog(blog.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
