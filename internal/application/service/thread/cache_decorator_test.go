package thread_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/thread"
	"circle-backend/internal/infrastructure/logger"
	"circle-backend/internal/infrastructure/outbound/cache/memory"
	"circle-backend/internal/infrastructure/outbound/metrics/noop"
	repo_memory "circle-backend/internal/infrastructure/outbound/repository/memory"
)

type decoratorFixture struct {
	service input.Service
	store   *memory.Store
	db      *repo_memory.Database
}

func newDecoratorFixture(t *testing.T) *decoratorFixture {
	t.Helper()
	db := repo_memory.NewDatabase()
	store := memory.NewStore()
	log := logger.New("test")
	metrics := noop.NewNoopMetricsProvider()

	inner := NewThreadService(
		repo_memory.NewThreadRepository(db),
		repo_memory.NewUnitOfWork(db),
		&recordingBroadcaster{},
		log,
		metrics,
		100,
	)

	return &decoratorFixture{
		service: NewThreadServiceCacheDecorator(inner, memory.NewFeedCache(store), log, metrics),
		store:   store,
		db:      db,
	}
}

func (f *decoratorFixture) seedThread(t *testing.T, authorID int64, content string, images ...string) *model.Thread {
	t.Helper()
	created, err := repo_memory.NewThreadRepository(f.db).Create(context.Background(), &model.Thread{
		AuthorID: authorID,
		Content:  &content,
		Images:   images,
	})
	require.NoError(t, err)
	return created
}

func TestThreadDecorator_GetFeedReadThrough(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	f.seedThread(t, alice.ID, "first")

	ctx := context.Background()
	assert.False(t, f.store.Has(cachekey.GlobalFeed()))

	// Miss populates the cache.
	rows, err := f.service.GetFeed(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, f.store.Has(cachekey.GlobalFeed()))

	// A second read is served from cache: a thread written behind the
	// cache's back is not visible.
	f.seedThread(t, alice.ID, "second")
	cached, err := f.service.GetFeed(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestThreadDecorator_FeedTTLExpiry(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	f.seedThread(t, alice.ID, "first")

	base := time.Now()
	f.store.SetClock(func() time.Time { return base })

	ctx := context.Background()
	_, err := f.service.GetFeed(ctx)
	require.NoError(t, err)
	assert.True(t, f.store.Has(cachekey.GlobalFeed()))

	f.seedThread(t, alice.ID, "second")

	// Just inside the TTL the stale entry still serves.
	f.store.SetClock(func() time.Time { return base.Add(59 * time.Second) })
	rows, err := f.service.GetFeed(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// Past the TTL the entry is gone and the store is re-read.
	f.store.SetClock(func() time.Time { return base.Add(61 * time.Second) })
	rows, err = f.service.GetFeed(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestThreadDecorator_CacheOutageFallsThrough(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	f.seedThread(t, alice.ID, "resilient")

	f.store.SetUnavailable(true)

	rows, err := f.service.GetFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = f.service.GetUserFeed(context.Background(), alice.ID, false)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestThreadDecorator_CreateInvalidation(t *testing.T) {
	tests := []struct {
		name          string
		dto           func(authorID int64) *model.CreateThreadDTO
		wantMediaDrop bool
	}{
		{
			name: "text thread leaves media feed alone",
			dto: func(authorID int64) *model.CreateThreadDTO {
				return &model.CreateThreadDTO{AuthorID: authorID, Content: strPtr("plain")}
			},
			wantMediaDrop: false,
		},
		{
			name: "media thread drops media feed too",
			dto: func(authorID int64) *model.CreateThreadDTO {
				return &model.CreateThreadDTO{AuthorID: authorID, Images: []string{"https://cdn/a.png"}}
			},
			wantMediaDrop: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDecoratorFixture(t)
			alice := seedUser(t, f.db, "alice")
			f.seedThread(t, alice.ID, "warmup", "https://cdn/old.png")

			ctx := context.Background()
			_, err := f.service.GetFeed(ctx)
			require.NoError(t, err)
			_, err = f.service.GetUserFeed(ctx, alice.ID, false)
			require.NoError(t, err)
			_, err = f.service.GetUserFeed(ctx, alice.ID, true)
			require.NoError(t, err)

			_, err = f.service.Create(ctx, tt.dto(alice.ID))
			require.NoError(t, err)

			assert.False(t, f.store.Has(cachekey.GlobalFeed()))
			assert.False(t, f.store.Has(cachekey.UserFeed(alice.ID, false)))
			assert.Equal(t, !tt.wantMediaDrop, f.store.Has(cachekey.UserFeed(alice.ID, true)))
		})
	}
}

func TestThreadDecorator_UpdateAndDeleteInvalidateAllThreeKeys(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	thread := f.seedThread(t, alice.ID, "editable")

	ctx := context.Background()
	warm := func() {
		_, err := f.service.GetFeed(ctx)
		require.NoError(t, err)
		_, err = f.service.GetUserFeed(ctx, alice.ID, false)
		require.NoError(t, err)
		_, err = f.service.GetUserFeed(ctx, alice.ID, true)
		require.NoError(t, err)
	}

	warm()
	_, err := f.service.Update(ctx, alice.ID, thread.ID, &model.UpdateThreadDTO{Content: strPtr("edited")})
	require.NoError(t, err)
	assert.False(t, f.store.Has(cachekey.GlobalFeed()))
	assert.False(t, f.store.Has(cachekey.UserFeed(alice.ID, false)))
	assert.False(t, f.store.Has(cachekey.UserFeed(alice.ID, true)))

	warm()
	require.NoError(t, f.service.Delete(ctx, alice.ID, thread.ID))
	assert.False(t, f.store.Has(cachekey.GlobalFeed()))
	assert.False(t, f.store.Has(cachekey.UserFeed(alice.ID, false)))
	assert.False(t, f.store.Has(cachekey.UserFeed(alice.ID, true)))
}

func TestThreadDecorator_InvalidationPrecision(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	bob := seedUser(t, f.db, "bob")
	f.seedThread(t, bob.ID, "untouched")

	ctx := context.Background()
	_, err := f.service.GetUserFeed(ctx, bob.ID, false)
	require.NoError(t, err)
	require.True(t, f.store.Has(cachekey.UserFeed(bob.ID, false)))

	// Alice's mutation must not evict Bob's feed.
	_, err = f.service.Create(ctx, &model.CreateThreadDTO{AuthorID: alice.ID, Content: strPtr("mine")})
	require.NoError(t, err)
	assert.True(t, f.store.Has(cachekey.UserFeed(bob.ID, false)))
}

func TestThreadDecorator_FailedMutationLeavesCache(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	bob := seedUser(t, f.db, "bob")
	thread := f.seedThread(t, alice.ID, "protected")

	ctx := context.Background()
	_, err := f.service.GetFeed(ctx)
	require.NoError(t, err)

	// Bob is not the author; the denied update must not invalidate.
	_, err = f.service.Update(ctx, bob.ID, thread.ID, &model.UpdateThreadDTO{Content: strPtr("nope")})
	require.Error(t, err)
	assert.True(t, f.store.Has(cachekey.GlobalFeed()))
}

func TestThreadDecorator_ViewerIsolation(t *testing.T) {
	f := newDecoratorFixture(t)
	alice := seedUser(t, f.db, "alice")
	bob := seedUser(t, f.db, "bob")
	thread := f.seedThread(t, alice.ID, "liked by bob")
	require.NoError(t, repo_memory.NewLikeRepository(f.db).Create(context.Background(), bob.ID, thread.ID))

	rows, err := f.service.GetFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// One cached row-set, per-viewer is_liked.
	assert.True(t, rows[0].ToFeedThread(bob.ID).IsLiked)
	assert.False(t, rows[0].ToFeedThread(alice.ID).IsLiked)
	assert.Equal(t, 1, rows[0].ToFeedThread(alice.ID).Likes)
}
