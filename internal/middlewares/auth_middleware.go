package middlewares

import (
	"net/http"
	"strings"

	"github.com/blogapp/blogapp_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// コンテキストに保存するキー
const (
	ContextIdentityKey     = "identity"
	ContextSessionTokenKey = "session_token"
)

// AuthMiddleware 認証ミドルウェア。セッションが確立していないリクエストは
// 401で遮断し、ログイン画面への誘導情報を返す
func AuthMiddleware(sessionService services.SessionService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"error":    "ログインが必要です",
				"redirect": "/login",
			})
			ctx.Abort()
			return
		}

		identity, err := sessionService.Current(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"error":    "ログインが必要です",
				"redirect": "/login",
			})
			ctx.Abort()
			return
		}

		// ログイン中ユーザーとトークンをコンテキストに保存
		ctx.Set(ContextIdentityKey, identity)
		ctx.Set(ContextSessionTokenKey, token)
		ctx.Next()
	}
}

// bearerToken AuthorizationヘッダーからBearerトークンを取り出す
func bearerToken(ctx *gin.Context) (string, bool) {
	authHeader := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

// CurrentIdentity コンテキストからログイン中ユーザーを取り出す
func CurrentIdentity(ctx *gin.Context) (*services.Identity, bool) {
	value, exists := ctx.Get(ContextIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*services.Identity)
	return identity, ok
}

// SessionToken コンテキストからセッショントークンを取り出す
func SessionToken(ctx *gin.Context) string {
	return ctx.GetString(ContextSessionTokenKey)
}
