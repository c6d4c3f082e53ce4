// README: Bearer-token auth middleware; verified identity lands in the gin context.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripgen/internal/infra"
)

const (
	callerUIDKey   = "caller_uid"
	callerEmailKey = "caller_email"
)

// Auth rejects requests without a valid bearer token.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyToken(c.Request.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerUIDKey, token.UID)
		c.Set(callerEmailKey, token.Email)
		c.Next()
	}
}

// CallerUID returns the authenticated user id, or "" outside an authed route.
func CallerUID(c *gin.Context) string {
	v, _ := c.Get(callerUIDKey)
	uid, _ := v.(string)
	return uid
}

// CallerEmail returns the authenticated user email, or "".
func CallerEmail(c *gin.Context) string {
	v, _ := c.Get(callerEmailKey)
	email, _ := v.(string)
	return email
}
