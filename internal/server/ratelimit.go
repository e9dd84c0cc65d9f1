package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// rateLimitMiddleware enforces a per-client fixed window of requests per
// minute, counted in redis. Redis failures let the request through; the
// limiter protects capacity, it is not a security boundary.
func rateLimitMiddleware(client *redis.Client, requestsPerMinute int, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		window := time.Now().UTC().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), window)

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, 2*time.Minute)
		}

		if count > int64(requestsPerMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": gin.H{
				"code":    "rate_limited",
				"message": "too many requests",
			}})
			return
		}
		c.Next()
	}
}
