package services

import (
	"bytes"
	"mime/multipart"
	"testing"
	"time"

	"github.com/blogapp/blogapp_backend/internal/config"
	"github.com/blogapp/blogapp_backend/internal/models"
	"github.com/blogapp/blogapp_backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB テスト用のインメモリデータベースを作成
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// インメモリDBは接続ごとに別物になるため、プールを1本に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// SQLiteは外部キー制約を明示的に有効化する必要がある
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
	))

	return db
}

// newTestConfig テスト用の設定を作成（アップロード先は一時ディレクトリ）
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
		Storage: config.StorageConfig{
			UploadDir:     t.TempDir(),
			MaxUploadSize: 1024 * 1024,
		},
	}
}

// createTestUser テスト用のユーザーを作成
func createTestUser(t *testing.T, db *gorm.DB, fullName, email string) *models.User {
	t.Helper()

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: "x",
		ProfileImage: models.DefaultProfileImage,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

// memUpload メモリ上のアップロードファイル
type memUpload struct {
	*bytes.Reader
}

// Close multipart.Fileを満たすためのダミー実装
func (memUpload) Close() error { return nil }

// newUpload テスト用のアップロードファイルを作成
func newUpload(name string, content []byte) (multipart.File, *multipart.FileHeader) {
	return memUpload{bytes.NewReader(content)}, &multipart.FileHeader{
		Filename: name,
		Size:     int64(len(content)),
	}
}
