package middleware

import (
	"math"
	"net/http"
	"strconv"

	"art-portfolio/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// ThrottleWrites lets each client IP call a route once per cooldown and
// answers 429 inside it. Routes are throttled independently. A nil
// throttler disables the check.
func ThrottleWrites(t *ratelimit.KeyedThrottler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if t == nil {
			c.Next()
			return
		}

		if !t.Allow(c.ClientIP() + " " + c.FullPath()) {
			retry := int(math.Ceil(t.Limit().Seconds()))
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later"})
			return
		}

		c.Next()
	}
}
