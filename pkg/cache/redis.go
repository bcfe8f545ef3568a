package cache

import (
	"context"
	"fmt"
	"time"

	"vlog-hub/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr(), err)
	}

	return client, nil
}

const revokedTokenKeyFmt = "revoked_token:%s"

// TokenRevocationList remembers logged-out token IDs until the tokens would
// have expired on their own.
type TokenRevocationList struct {
	client *redis.Client
}

func NewTokenRevocationList(client *redis.Client) *TokenRevocationList {
	return &TokenRevocationList{client: client}
}

func (l *TokenRevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(revokedTokenKeyFmt, tokenID)
	return l.client.Set(ctx, key, "1", ttl).Err()
}

func (l *TokenRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(revokedTokenKeyFmt, tokenID)
	n, err := l.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
