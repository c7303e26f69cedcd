package middleware

import (
	"context"
	"net/http"
	"strconv"

	"nimbus-chat/internal/redis"
	"nimbus-chat/internal/services"
	"nimbus-chat/internal/transport/httpdto"
	nimbus_errors "nimbus-chat/pkg/errors"
	"nimbus-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ChatWriteLimiter is the slice of the rate limiter this middleware
// needs, kept as an interface so tests can inject a fake.
type ChatWriteLimiter interface {
	AllowChatWrite(ctx context.Context, userID string) (*redis.RateLimitResult, error)
}

// ChatWriteRateLimitMiddleware limits chat creation and appends per
// user. Must run after the auth middleware. A nil limiter (Redis not
// configured) disables limiting, and limiter errors fail open so a
// Redis outage does not take chat writes down with it.
func ChatWriteRateLimitMiddleware(limiter ChatWriteLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		result, err := limiter.AllowChatWrite(c.Request.Context(), userID)
		if err != nil {
			if log := logger.GetGlobalLogger(); log != nil {
				log.ErrorfCtx(c.Request.Context(), "rate limit check failed: %s", err)
			}
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse(nimbus_errors.ErrRateLimited.Error(), "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
