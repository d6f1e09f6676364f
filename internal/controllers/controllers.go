package controllers

import (
	"errors"
	"net/http"

	"github.com/blogapp/blogapp_backend/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError AppErrorの種別に応じたステータスコードでエラーを返す。
// 種別のないエラーは詳細を漏らさず500として扱う
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindStore {
			logrus.WithError(err).Error("永続化層のエラー")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
			return
		}
		ctx.JSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
		return
	}

	logrus.WithError(err).Error("未分類のエラー")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
}
