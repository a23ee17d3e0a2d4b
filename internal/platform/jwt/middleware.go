package jwt

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/auth/domain/entity"
)

// Context keys under which the middleware stores the resolved identity.
const (
	ContextUser   = "authUser"
	ContextUserID = "userID"
)

// IdentityValidator resolves a bearer token to a stored user.
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（middleware）が定義します。
type IdentityValidator interface {
	// ValidateIdentity verifies the token and resolves its subject to a user.
	ValidateIdentity(ctx context.Context, token string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token on
// every request, resolves the user it identifies and stores it in the request
// context. Any failure aborts with 401; there is no unauthenticated fallback.
func AuthRequired(auth IdentityValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			api.AbortWithError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		// 2. トークンを検証し、subjectをユーザーに解決する
		user, err := auth.ValidateIdentity(c.Request.Context(), token)
		if err != nil {
			api.AbortWithError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		// 3. 解決したユーザーをコンテキストに格納して後続ハンドラーへ
		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired for this request.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// CurrentUserID returns the id of the user resolved by AuthRequired.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
