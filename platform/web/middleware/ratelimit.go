package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const rateKey = "ratelimit.%s"

// RateLimit caps the number of requests per client ip inside a window.
// With no cache configured, or when the cache is unreachable, requests pass.
func RateLimit(log *zap.SugaredLogger, cache *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if cache == nil || limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf(rateKey, c.ClientIP())

		count, err := cache.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Error("failure to incr rate counter for ", key, ": ", err.Error())
			c.Next()
			return
		}
		if count == 1 {
			if err := cache.Expire(c.Request.Context(), key, window).Err(); err != nil {
				log.Error("failure to expire rate counter for ", key, ": ", err.Error())
			}
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
