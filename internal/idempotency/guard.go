// Package idempotency rejects repeated submissions carrying the same
// client-generated token.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL is how long a claimed token blocks repeats.
const DefaultTTL = 10 * time.Minute

const keyPrefix = "vanta:submit:"

var ErrDuplicate = errors.New("duplicate submission")

// Guard claims a token on first use. Claim returns ErrDuplicate when the token
// was already claimed, and nil for an empty token.
type Guard interface {
	Claim(ctx context.Context, scope, token string) error
	Release(ctx context.Context, scope, token string) error
}

type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisGuard{client: client, ttl: ttl}
}

// Connect parses redisURL and verifies the server is reachable.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (g *RedisGuard) Claim(ctx context.Context, scope, token string) error {
	if token == "" {
		return nil
	}

	set, err := g.client.SetNX(ctx, key(scope, token), time.Now().Unix(), g.ttl).Result()
	if err != nil {
		return fmt.Errorf("claim submission token: %w", err)
	}
	if !set {
		return ErrDuplicate
	}
	return nil
}

// Release frees a token so a failed submission can be retried with it.
func (g *RedisGuard) Release(ctx context.Context, scope, token string) error {
	if token == "" {
		return nil
	}
	if err := g.client.Del(ctx, key(scope, token)).Err(); err != nil {
		return fmt.Errorf("release submission token: %w", err)
	}
	return nil
}

func key(scope, token string) string {
	return keyPrefix + scope + ":" + token
}

// NopGuard accepts every submission. Used when no Redis is configured.
type NopGuard struct{}

func (NopGuard) Claim(context.Context, string, string) error   { return nil }
func (NopGuard) Release(context.Context, string, string) error { return nil }
