package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 5
)

// LoginLimiter throttles brute-force login attempts, backed by Redis.
// Key format: login_attempts:<lowercased login>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooMany reports whether the login has exceeded the failure budget within
// the current window.
func (l *LoginLimiter) TooMany(ctx context.Context, login string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(login)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("attempt check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure counts one failed attempt. The counter expires after the
// window so a cold account unlocks itself.
func (l *LoginLimiter) RecordFailure(ctx context.Context, login string) error {
	key := l.key(login)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, attemptWindow)
	_, err := pipe.Exec(ctx)
	return err
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, login string) error {
	return l.client.Del(ctx, l.key(login)).Err()
}

func (l *LoginLimiter) key(login string) string {
	return "login_attempts:" + strings.ToLower(login)
}
