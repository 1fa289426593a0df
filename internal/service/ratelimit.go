package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type rateLimitConfig struct {
	window time.Duration
}

var defaultSelfRateLimit = rateLimitConfig{window: 5 * time.Second}

const selfRegisterAction = "self_register"

type RegistrationOption func(*registrationService)

func WithSelfRegisterRateLimit(window time.Duration) RegistrationOption {
	return func(s *registrationService) {
		s.selfRateLimit = rateLimitConfig{window: window}
	}
}

// CheckAndSetRateLimit acquires a short-lived lock for subject+action.
// Returns false while the lock is held. A nil redis client disables rate
// limiting entirely.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, subject, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:%s:%s", action, subject)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// ClearRateLimit releases the lock early, e.g. after a validation failure
// that should not burn the caller's attempt.
func ClearRateLimit(ctx context.Context, rdb *redis.Client, subject, action string) error {
	if rdb == nil {
		return nil
	}
	key := fmt.Sprintf("rate_limit:%s:%s", action, subject)
	_, err := rdb.Del(ctx, key).Result()
	return err
}
