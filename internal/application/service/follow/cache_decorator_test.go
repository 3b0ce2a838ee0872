package follow_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/domain/cachekey"
	"circle-backend/internal/infrastructure/logger"
	cache_memory "circle-backend/internal/infrastructure/outbound/cache/memory"
)

func TestFollowDecorator_InvalidatesBothProfiles(t *testing.T) {
	f := newFollowFixture(t)
	store := cache_memory.NewStore()
	svc := NewFollowServiceCacheDecorator(f.service, cache_memory.NewProfileCache(store), logger.New("test"))

	ctx := context.Background()
	profiles := cache_memory.NewProfileCache(store)
	warm := func() {
		for _, id := range []int64{f.alice.ID, f.bob.ID} {
			profile, err := f.service.userRepo.GetProfile(ctx, id)
			require.NoError(t, err)
			require.NoError(t, profiles.SetProfile(ctx, profile))
		}
	}

	warm()
	require.NoError(t, svc.Follow(ctx, f.alice.ID, f.bob.ID))
	assert.False(t, store.Has(cachekey.Profile(f.alice.ID)))
	assert.False(t, store.Has(cachekey.Profile(f.bob.ID)))

	warm()
	require.NoError(t, svc.Unfollow(ctx, f.alice.ID, f.bob.ID))
	assert.False(t, store.Has(cachekey.Profile(f.alice.ID)))
	assert.False(t, store.Has(cachekey.Profile(f.bob.ID)))
}

func TestFollowDecorator_FailedFollowLeavesCache(t *testing.T) {
	f := newFollowFixture(t)
	store := cache_memory.NewStore()
	svc := NewFollowServiceCacheDecorator(f.service, cache_memory.NewProfileCache(store), logger.New("test"))

	ctx := context.Background()
	profile, err := f.service.userRepo.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)
	require.NoError(t, cache_memory.NewProfileCache(store).SetProfile(ctx, profile))

	require.Error(t, svc.Follow(ctx, f.alice.ID, f.alice.ID))
	assert.True(t, store.Has(cachekey.Profile(f.alice.ID)))
}
