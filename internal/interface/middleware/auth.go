package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/singhbetu188/medium-blog-api/pkg/helpers"
	"github.com/singhbetu188/medium-blog-api/pkg/response"
)

// CtxUserIDKey is the Gin context key under which the authenticated user id
// is stored for handlers downstream of Auth.
const CtxUserIDKey = "userID"

// Auth reads the bearer token from the Authorization header, verifies it and
// injects the user id into the request context. Every verification failure
// is answered with the same 403 body so a client cannot tell a malformed
// token from a bad signature or an elapsed expiry.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			response.Error[any](c, http.StatusForbidden, "unauthorized", nil)
			c.Abort()
			return
		}
		// Accept both a bare token and the standard Bearer prefix.
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Error[any](c, http.StatusForbidden, "unauthorized", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
