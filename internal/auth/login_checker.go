package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) UserID(ctx context.Context, token string) (string, error) {
	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(cmd.Err(), redis.Nil) {
		return "", ErrNotLoggedIn
	}
	if err := cmd.Err(); err != nil {
		return "", err
	}

	uid, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}
	if time.Since(createdAt) > c.ttl {
		return "", ErrNotLoggedIn
	}

	return uid, nil
}
