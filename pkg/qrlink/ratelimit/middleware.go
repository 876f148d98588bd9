package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware consults the guard before the protected handler runs, keyed by
// client IP. Denied requests get 429 with a Retry-After header in whole
// seconds, rounded up and never below 1.
func Middleware(g *Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := g.Allow(c.ClientIP())
		if !ok {
			secs := int(retryAfter / time.Second)
			if retryAfter%time.Second != 0 || secs == 0 {
				secs++
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
