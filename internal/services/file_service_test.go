package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blogapp/blogapp_backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAllowedExtensions(t *testing.T) {
	svc := NewFileService(newTestConfig(t))

	// ヘッダー画像はwebpを許可する
	file, header := newUpload("cover.webp", []byte("webp-bytes"))
	name, err := svc.Upload(file, header, UploadKindBlogHeader)
	require.NoError(t, err)
	assert.Contains(t, name, "blog_")

	// プロフィール画像はwebpを許可しない
	file, header = newUpload("avatar.webp", []byte("webp-bytes"))
	_, err = svc.Upload(file, header, UploadKindProfile)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// 画像以外の拡張子はどちらの用途でも拒否
	file, header = newUpload("script.php", []byte("<?php"))
	_, err = svc.Upload(file, header, UploadKindBlogHeader)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUploadGeneratesUniqueNames(t *testing.T) {
	svc := NewFileService(newTestConfig(t))

	names := make(map[string]bool)
	for i := 0; i < 5; i++ {
		file, header := newUpload("same.png", []byte("png-bytes"))
		name, err := svc.Upload(file, header, UploadKindProfile)
		require.NoError(t, err)
		// 同名のアップロードでも保存名は衝突しない
		assert.False(t, names[name])
		names[name] = true

		_, err = os.Stat(filepath.Join(svc.UploadDir(), name))
		require.NoError(t, err)
	}
}

func TestUploadSizeLimit(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Storage.MaxUploadSize = 4
	svc := NewFileService(cfg)

	file, header := newUpload("big.png", []byte("12345"))
	_, err := svc.Upload(file, header, UploadKindProfile)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestDeleteMissingFileIsNotError(t *testing.T) {
	svc := NewFileService(newTestConfig(t))

	assert.NoError(t, svc.Delete("no-such-file.png"))
	assert.NoError(t, svc.Delete(""))
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	svc := NewFileService(newTestConfig(t))

	file, header := newUpload("pic.jpg", []byte("jpg-bytes"))
	name, err := svc.Upload(file, header, UploadKindProfile)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(name))
	_, err = os.Stat(filepath.Join(svc.UploadDir(), name))
	assert.True(t, os.IsNotExist(err))
}
