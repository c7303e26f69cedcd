package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllowChatWriteUnreachableRedisReturnsError(t *testing.T) {
	// Nothing listens on port 1; the dial fails immediately.
	client := NewClient(Config{Addr: "127.0.0.1:1"})
	limiter := NewRateLimiter(client, DefaultRateLimitConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := limiter.AllowChatWrite(ctx, "user-1")
	require.Error(t, err)
}

func TestDefaultRateLimitConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	require.Equal(t, 60, cfg.ChatWriteLimit)
	require.Equal(t, 60*time.Second, cfg.ChatWriteWindow)
}
