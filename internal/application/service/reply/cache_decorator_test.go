package reply_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
	"circle-backend/internal/infrastructure/logger"
	cache_memory "circle-backend/internal/infrastructure/outbound/cache/memory"
)

func TestReplyDecorator_InvalidatesCountCarryingFeeds(t *testing.T) {
	f := newReplyFixture(t)
	store := cache_memory.NewStore()
	svc := NewReplyServiceCacheDecorator(f.service, cache_memory.NewFeedCache(store), logger.New("test"))

	ctx := context.Background()
	cache := cache_memory.NewFeedCache(store)
	require.NoError(t, cache.SetGlobalFeed(ctx, nil))
	require.NoError(t, cache.SetUserFeed(ctx, f.author.ID, false, nil))
	require.NoError(t, cache.SetUserFeed(ctx, f.author.ID, true, nil))

	_, err := svc.Create(ctx, &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: f.thread.ID,
		Content:  "bumps the count",
	})
	require.NoError(t, err)

	assert.False(t, store.Has(cachekey.GlobalFeed()))
	assert.False(t, store.Has(cachekey.UserFeed(f.author.ID, false)))
	// Reply counts do not change which threads carry media, so the media
	// feed entry survives.
	assert.True(t, store.Has(cachekey.UserFeed(f.author.ID, true)))
}

func TestReplyDecorator_FailedCreateLeavesCache(t *testing.T) {
	f := newReplyFixture(t)
	store := cache_memory.NewStore()
	svc := NewReplyServiceCacheDecorator(f.service, cache_memory.NewFeedCache(store), logger.New("test"))

	ctx := context.Background()
	require.NoError(t, cache_memory.NewFeedCache(store).SetGlobalFeed(ctx, nil))

	_, err := svc.Create(ctx, &model.CreateReplyDTO{AuthorID: f.replier.ID, ThreadID: 9999, Content: "orphan"})
	require.Error(t, err)

	assert.True(t, store.Has(cachekey.GlobalFeed()))
}

func TestReplyDecorator_DeleteInvalidates(t *testing.T) {
	f := newReplyFixture(t)
	store := cache_memory.NewStore()
	svc := NewReplyServiceCacheDecorator(f.service, cache_memory.NewFeedCache(store), logger.New("test"))

	ctx := context.Background()
	created, err := svc.Create(ctx, &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: f.thread.ID,
		Content:  "short lived",
	})
	require.NoError(t, err)

	cache := cache_memory.NewFeedCache(store)
	require.NoError(t, cache.SetGlobalFeed(ctx, nil))
	require.NoError(t, cache.SetUserFeed(ctx, f.author.ID, false, nil))

	_, err = svc.Delete(ctx, f.replier.ID, created.Reply.ID)
	require.NoError(t, err)

	assert.False(t, store.Has(cachekey.GlobalFeed()))
	assert.False(t, store.Has(cachekey.UserFeed(f.author.ID, false)))
}
