package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"nimbus-chat/internal/redis"
	"nimbus-chat/internal/services"
)

type fakeLimiter struct {
	result *redis.RateLimitResult
	err    error
	calls  int
}

func (f *fakeLimiter) AllowChatWrite(_ context.Context, _ string) (*redis.RateLimitResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newLimitedRouter(limiter ChatWriteLimiter, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/write", func(c *gin.Context) {
		if userID != "" {
			ctx := services.WithUserContext(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}, ChatWriteRateLimitMiddleware(limiter), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func post(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitNilLimiterPassesThrough(t *testing.T) {
	r := newLimitedRouter(nil, "user-1")

	w := post(r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitLimiterErrorFailsOpen(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis unreachable")}
	r := newLimitedRouter(limiter, "user-1")

	w := post(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, limiter.calls)
}

func TestRateLimitExhaustedWindowReturns429(t *testing.T) {
	limiter := &fakeLimiter{result: &redis.RateLimitResult{
		Allowed:   false,
		Remaining: 0,
		ResetIn:   30 * time.Second,
		Limit:     5,
	}}
	r := newLimitedRouter(limiter, "user-1")

	w := post(r)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	require.Equal(t, "30", w.Header().Get("X-RateLimit-Reset"))
	require.Contains(t, w.Body.String(), "rate limited")
}

func TestRateLimitAllowedSetsHeaders(t *testing.T) {
	limiter := &fakeLimiter{result: &redis.RateLimitResult{
		Allowed:   true,
		Remaining: 4,
		ResetIn:   60 * time.Second,
		Limit:     5,
	}}
	r := newLimitedRouter(limiter, "user-1")

	w := post(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitSkipsWithoutUserContext(t *testing.T) {
	limiter := &fakeLimiter{result: &redis.RateLimitResult{Allowed: false}}
	r := newLimitedRouter(limiter, "")

	w := post(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, limiter.calls)
}
