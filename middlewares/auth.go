package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenAuth checks the Authorization header against the single configured
// API token. Clients are trusted bots holding the shared token; there are
// no per-user credentials. In debug mode the check is skipped entirely.
func TokenAuth(token string, debug bool) gin.HandlerFunc {
	expected := []byte("Bearer " + token)
	return func(c *gin.Context) {
		if debug {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no Authorization header in request"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(header), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
			return
		}
		c.Next()
	}
}
