package membership

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openvenue/recruiter/internal/pkg/logger"
)

// CachedStore is a Redis read-through cache in front of another Store.
// The classifier hits the store once per invitee, and big recruitment
// batches repeat members, so a short TTL pays for itself. Any cache
// failure falls through to the inner store.
type CachedStore struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedStore wraps inner with a Redis cache.
func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(member, venuePrefix string) string {
	return fmt.Sprintf("membership:%s:%s", venuePrefix, strings.ToLower(strings.TrimSpace(member)))
}

// GroupsContaining returns cached groups when present, otherwise queries
// the inner store and caches the result.
func (s *CachedStore) GroupsContaining(ctx context.Context, member, venuePrefix string) ([]string, error) {
	key := cacheKey(member, venuePrefix)

	if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var groups []string
		if err := json.Unmarshal(data, &groups); err == nil {
			return groups, nil
		}
		// Corrupt entry: drop it and fall through.
		s.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		logger.Warn("membership cache read failed, falling through", "err", err.Error())
	}

	groups, err := s.inner.GroupsContaining(ctx, member, venuePrefix)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(groups); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
			logger.Warn("membership cache write failed", "err", err.Error())
		}
	}

	return groups, nil
}
