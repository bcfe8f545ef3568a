package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"vlog-hub/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Unreachable(t *testing.T) {
	cfg := &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"}
	_, err := NewRedisClient(cfg)
	assert.Error(t, err)
}

// Requires a reachable redis; skipped unless TEST_REDIS_HOST is set.
func TestTokenRevocationList(t *testing.T) {
	host := os.Getenv("TEST_REDIS_HOST")
	if host == "" {
		t.Skip("set TEST_REDIS_HOST to run redis tests")
	}
	client, err := NewRedisClient(&config.Config{RedisHost: host, RedisPort: "6379", RedisDB: 15})
	require.NoError(t, err)
	defer client.Close()

	list := NewTokenRevocationList(client)
	ctx := context.Background()

	revoked, err := list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	client.Del(ctx, "revoked_token:jti-1")
}
