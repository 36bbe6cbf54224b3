// internal/profile/cache.go
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "career:profile:"

// CachedStore is a read-through Redis cache in front of another Store. Cache
// errors are logged and bypassed; only the backing store can fail a lookup.
type CachedStore struct {
	next   Store
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedStore wraps next. A ttl of zero disables caching.
func NewCachedStore(next Store, rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *CachedStore {
	return &CachedStore{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func cacheKey(userID string) string {
	return cacheKeyPrefix + userID
}

func (s *CachedStore) Get(ctx context.Context, userID string) (*models.WorkerProfile, error) {
	if s.ttl <= 0 || s.rdb == nil {
		return s.next.Get(ctx, userID)
	}

	key := cacheKey(userID)
	val, err := s.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var p models.WorkerProfile
		if jsonErr := json.Unmarshal([]byte(val), &p); jsonErr == nil {
			s.logger.Debug("profile cache hit", map[string]interface{}{"userId": userID})
			return &p, nil
		}
		s.logger.Warn("discarding corrupt cached profile", map[string]interface{}{"userId": userID})
	case errors.Is(err, redis.Nil):
	default:
		s.logger.Warn("profile cache read failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	p, err := s.next.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.logger.Warn("profile cache write failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}
	return p, nil
}

// Invalidate drops the cached copy so the next Get reads through.
func (s *CachedStore) Invalidate(ctx context.Context, userID string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, cacheKey(userID)).Err()
}
