package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ssemenov2018/task-manager-api/internal/logger"
)

// UserCacheRepository caches the "user exists and is active" answer in
// Redis so identity resolution does not hit Postgres on every request.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetActive returns the cached active flag for a user id. A cache miss
// is reported as an error so callers fall through to the store.
func (r *UserCacheRepository) GetActive(ctx context.Context, userID int64) (bool, error) {
	key := fmt.Sprintf("user_active:%d", userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return false, fmt.Errorf("no cached state for user %d", userID)
		}
		return false, err
	}

	return val == "1", nil
}

// SetActive caches the active flag for a user id with expiration.
func (r *UserCacheRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	key := fmt.Sprintf("user_active:%d", userID)
	val := "0"
	if active {
		val = "1"
	}

	err := r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", err,
	)

	return err
}
