package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind アプリケーションエラーの種別
type Kind int

const (
	// KindUnknown 未分類のエラー
	KindUnknown Kind = iota
	// KindValidation 入力値が不正
	KindValidation
	// KindDuplicateEmail メールアドレスが登録済み
	KindDuplicateEmail
	// KindNotAuthenticated 未ログイン
	KindNotAuthenticated
	// KindNoSuchAccount メールアドレスに一致するアカウントがない
	KindNoSuchAccount
	// KindBadPassword パスワードが一致しない
	KindBadPassword
	// KindNotFound リソースが存在しない
	KindNotFound
	// KindForbidden 所有者以外による操作
	KindForbidden
	// KindUpload ファイル保存の失敗
	KindUpload
	// KindStore 永続化層の失敗
	KindStore
)

// AppError 種別付きのアプリケーションエラー
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error エラーメッセージを返す
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 元のエラーを返す
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode 種別に対応するHTTPステータスコードを返す
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindDuplicateEmail:
		return http.StatusConflict
	case KindNotAuthenticated, KindNoSuchAccount, KindBadPassword:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUpload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New 種別とメッセージからAppErrorを作成
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap 元のエラーを包んでAppErrorを作成
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Validationf 書式付きでバリデーションエラーを作成
func Validationf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf エラーの種別を判定する（AppError以外はKindUnknown）
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind エラーが指定種別かどうかを判定
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
