package user_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/user"
	"circle-backend/internal/infrastructure/logger"
	cache_memory "circle-backend/internal/infrastructure/outbound/cache/memory"
	"circle-backend/internal/infrastructure/outbound/metrics/noop"
	"circle-backend/internal/infrastructure/outbound/repository/memory"
)

type userFixture struct {
	service input.Service
	store   *cache_memory.Store
	db      *memory.Database
	alice   *model.User
	bob     *model.User
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	db := memory.NewDatabase()
	store := cache_memory.NewStore()
	log := logger.New("test")
	ctx := context.Background()

	users := memory.NewUserRepository(db)
	alice, err := users.Create(ctx, &model.User{Username: "alice", FullName: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, &model.User{Username: "bob", FullName: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	inner := NewUserService(users, memory.NewFollowRepository(db), log)
	decorated := NewUserServiceCacheDecorator(
		inner,
		cache_memory.NewProfileCache(store),
		cache_memory.NewFeedCache(store),
		log,
		noop.NewNoopMetricsProvider(),
	)

	return &userFixture{service: decorated, store: store, db: db, alice: alice, bob: bob}
}

func TestUserDecorator_ProfileReadThrough(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	assert.False(t, f.store.Has(cachekey.Profile(f.alice.ID)))

	profile, err := f.service.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.True(t, f.store.Has(cachekey.Profile(f.alice.ID)))

	// Follower count changes behind the cache are not visible until the
	// entry is dropped or expires.
	require.NoError(t, memory.NewFollowRepository(f.db).Create(ctx, f.bob.ID, f.alice.ID))
	cached, err := f.service.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Zero(t, cached.FollowerCount)
}

func TestUserDecorator_ProfileTTLExpiry(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	base := time.Now()
	f.store.SetClock(func() time.Time { return base })

	_, err := f.service.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)

	require.NoError(t, memory.NewFollowRepository(f.db).Create(ctx, f.bob.ID, f.alice.ID))

	f.store.SetClock(func() time.Time { return base.Add(61 * time.Second) })
	fresh, err := f.service.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.FollowerCount)
}

func TestUserDecorator_UpdateProfileInvalidationFanOut(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	cache := cache_memory.NewFeedCache(f.store)
	require.NoError(t, cache.SetGlobalFeed(ctx, nil))
	require.NoError(t, cache.SetUserFeed(ctx, f.alice.ID, false, nil))
	require.NoError(t, cache.SetUserFeed(ctx, f.alice.ID, true, nil))
	_, err := f.service.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)

	name := "Alice Updated"
	_, err = f.service.UpdateProfile(ctx, f.alice.ID, &model.UpdateProfileDTO{FullName: &name})
	require.NoError(t, err)

	// Profile and every feed that embeds her display fields are dropped.
	assert.False(t, f.store.Has(cachekey.Profile(f.alice.ID)))
	assert.False(t, f.store.Has(cachekey.GlobalFeed()))
	assert.False(t, f.store.Has(cachekey.UserFeed(f.alice.ID, false)))
	assert.False(t, f.store.Has(cachekey.UserFeed(f.alice.ID, true)))
}

func TestUserDecorator_UpdateProfilePrecision(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	_, err := f.service.GetProfile(ctx, f.bob.ID)
	require.NoError(t, err)

	name := "Alice Updated"
	_, err = f.service.UpdateProfile(ctx, f.alice.ID, &model.UpdateProfileDTO{FullName: &name})
	require.NoError(t, err)

	assert.True(t, f.store.Has(cachekey.Profile(f.bob.ID)))
}

func TestUserDecorator_IsFollowingNeverCached(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	// Warm the profile first; the follow flag must still track live state.
	_, err := f.service.GetProfile(ctx, f.alice.ID)
	require.NoError(t, err)

	following, err := f.service.IsFollowing(ctx, f.bob.ID, f.alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, memory.NewFollowRepository(f.db).Create(ctx, f.bob.ID, f.alice.ID))

	following, err = f.service.IsFollowing(ctx, f.bob.ID, f.alice.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestUserDecorator_CacheOutageFallsThrough(t *testing.T) {
	f := newUserFixture(t)
	f.store.SetUnavailable(true)

	profile, err := f.service.GetProfile(context.Background(), f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

func TestUserService_SearchMarksFollowState(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, memory.NewFollowRepository(f.db).Create(ctx, f.alice.ID, f.bob.ID))

	results, err := f.service.Search(ctx, f.alice.ID, "o", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bob", results[0].Username)
	assert.True(t, results[0].IsFollowing)
}
