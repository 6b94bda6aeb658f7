package membership

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	groups map[string][]string
	calls  int
}

func (s *countingStore) GroupsContaining(ctx context.Context, member, venuePrefix string) ([]string, error) {
	s.calls++
	return s.groups[member], nil
}

func TestCachedStoreReadThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	inner := &countingStore{groups: map[string][]string{
		"carol@y.com": {"VENUE/2026/Reviewers/Invited"},
	}}
	store := NewCachedStore(inner, rdb, time.Minute)

	ctx := context.Background()

	groups, err := store.GroupsContaining(ctx, "carol@y.com", "VENUE/2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"VENUE/2026/Reviewers/Invited"}, groups)
	assert.Equal(t, 1, inner.calls)

	// Second read is served from cache.
	groups, err = store.GroupsContaining(ctx, "carol@y.com", "VENUE/2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"VENUE/2026/Reviewers/Invited"}, groups)
	assert.Equal(t, 1, inner.calls)

	// After TTL expiry the inner store is hit again.
	mr.FastForward(2 * time.Minute)
	_, err = store.GroupsContaining(ctx, "carol@y.com", "VENUE/2026")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedStoreFallsThroughWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	inner := &countingStore{groups: map[string][]string{
		"dave@z.com": {"VENUE/2026/Reviewers"},
	}}
	store := NewCachedStore(inner, rdb, time.Minute)

	groups, err := store.GroupsContaining(context.Background(), "dave@z.com", "VENUE/2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"VENUE/2026/Reviewers"}, groups)
	assert.Equal(t, 1, inner.calls)
}
