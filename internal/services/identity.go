package services

import (
	"context"

	"github.com/ssemenov2018/task-manager-api/internal/logger"
)

// ActiveUserCache caches the "exists and is active" answer per user id.
type ActiveUserCache interface {
	GetActive(ctx context.Context, userID int64) (bool, error)
	SetActive(ctx context.Context, userID int64, active bool) error
}

// IdentityService answers whether a user id resolves to an existing,
// active account. Results are cached with a bounded TTL, so a just
// deactivated account may pass until the cache entry expires.
type IdentityService struct {
	cache  ActiveUserCache
	reader UserReader
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(cache ActiveUserCache, reader UserReader) *IdentityService {
	return &IdentityService{
		cache:  cache,
		reader: reader,
	}
}

// CheckActive reports whether the user exists and is active, consulting
// the cache first and falling through to the store on a miss.
func (s *IdentityService) CheckActive(ctx context.Context, userID int64) (bool, error) {
	if s.cache != nil {
		if active, err := s.cache.GetActive(ctx, userID); err == nil {
			return active, nil
		}
	}

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "user_id", userID, "err", err)
		return false, err
	}
	if user == nil {
		return false, nil
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, userID, user.IsActive); err != nil {
			logger.Log.Errorw("failed to cache user state", "user_id", userID, "err", err)
		}
	}

	return user.IsActive, nil
}
