package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/blogapp/blogapp_backend/internal/apperrors"
	"github.com/blogapp/blogapp_backend/internal/config"

	"github.com/google/uuid"
)

// UploadKind アップロードの用途
type UploadKind string

const (
	// UploadKindProfile プロフィール画像
	UploadKindProfile UploadKind = "profile"
	// UploadKindBlogHeader ブログのヘッダー画像
	UploadKindBlogHeader UploadKind = "blog_header"
)

// 用途ごとの許可拡張子。ヘッダー画像のみwebpを許可する（プロフィール側は
// 許可しないという元仕様の非対称をそのまま残している）
var allowedExtensions = map[UploadKind]map[string]bool{
	UploadKindProfile: {
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	},
	UploadKindBlogHeader: {
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	},
}

// FileService アップロードファイルの保存に関するサービスインターフェース
type FileService interface {
	Upload(file multipart.File, header *multipart.FileHeader, kind UploadKind) (string, error)
	Delete(fileName string) error
	UploadDir() string
}

// fileService FileServiceの実装
type fileService struct {
	config    *config.Config
	uploadDir string
}

// NewFileService FileServiceを作成
func NewFileService(cfg *config.Config) FileService {
	uploadDir := cfg.Storage.UploadDir
	_ = os.MkdirAll(uploadDir, 0755)

	return &fileService{
		config:    cfg,
		uploadDir: uploadDir,
	}
}

// Upload ファイルを保存し、生成したファイル名を返す
func (s *fileService) Upload(file multipart.File, header *multipart.FileHeader, kind UploadKind) (string, error) {
	if file == nil || header == nil {
		return "", apperrors.New(apperrors.KindValidation, "ファイルが必要です")
	}

	// 拡張子をチェック
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[kind][ext] {
		return "", apperrors.Validationf("拡張子 %s は許可されていません", ext)
	}

	// ファイルサイズをチェック
	if header.Size > s.config.Storage.MaxUploadSize {
		return "", apperrors.Validationf("ファイルサイズが大きすぎます (最大 %d MB)", s.config.Storage.MaxUploadSize/1024/1024)
	}

	// 衝突しないファイル名を生成（タイムスタンプ+元ファイル名方式は
	// 上書きやパス混入の危険があるためUUIDを使う）
	fileName := uuid.NewString() + ext
	if kind == UploadKindBlogHeader {
		fileName = "blog_" + fileName
	}
	filePath := filepath.Join(s.uploadDir, fileName)

	dest, err := os.Create(filePath)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUpload, "ファイルの作成に失敗しました", err)
	}
	defer dest.Close()

	// シーク位置をリセット
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.Wrap(apperrors.KindUpload, "ファイルのシークに失敗しました", err)
	}

	if _, err := io.Copy(dest, file); err != nil {
		// 書きかけのファイルは残さない
		_ = os.Remove(filePath)
		return "", apperrors.Wrap(apperrors.KindUpload, "ファイルのコピーに失敗しました", err)
	}

	return fileName, nil
}

// Delete ファイルを削除。存在しない場合はエラーにしない
func (s *fileService) Delete(fileName string) error {
	if fileName == "" {
		return nil
	}

	// ディレクトリ外への参照を拒否する
	localPath := filepath.Join(s.uploadDir, filepath.Base(fileName))

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(localPath); err != nil {
		return fmt.Errorf("ファイルの削除に失敗しました: %v", err)
	}
	return nil
}

// UploadDir アップロードディレクトリのパスを返す
func (s *fileService) UploadDir() string {
	return s.uploadDir
}
