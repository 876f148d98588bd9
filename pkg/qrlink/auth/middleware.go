package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SecretHeader carries the admin secret on gated endpoints.
const SecretHeader = "X-Delete-Secret"

// RequireSecret gates an endpoint behind the shared delete secret. An empty
// configured secret leaves the endpoint open.
func RequireSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid delete secret"})
			c.Abort()
			return
		}

		c.Next()
	}
}
