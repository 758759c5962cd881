package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gahalberto/ImobiManager/internal/domain/repository"
	"github.com/gahalberto/ImobiManager/pkg/helpers"
	"github.com/gahalberto/ImobiManager/pkg/response"
)

const CtxUserEmailKey = "userEmail"

// Auth gates protected routes. It requires a Bearer token, validates the
// signature, and looks the claimed account up in the user directory so that
// deleting a user invalidates every token ever issued to them.
//
// Every failure mode returns the same generic message: a caller must not be
// able to tell a bad signature from a deleted account.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "access denied", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "access denied", nil)
			return
		}
		u, err := users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil || u == nil {
			response.AbortError(c, http.StatusUnauthorized, "access denied", nil)
			return
		}
		c.Set(CtxUserEmailKey, u.Email)
		c.Next()
	}
}
