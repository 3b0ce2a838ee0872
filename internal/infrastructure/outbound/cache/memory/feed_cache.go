package memory

import (
	"context"
	"time"

	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
)

const feedCacheTTL = 60 * time.Second

type FeedCache struct {
	store *Store
}

func NewFeedCache(store *Store) *FeedCache {
	return &FeedCache{store: store}
}

func (f *FeedCache) GetGlobalFeed(ctx context.Context) ([]*model.ThreadFeedRow, error) {
	var rows []*model.ThreadFeedRow
	if err := f.store.Get(ctx, cachekey.GlobalFeed(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (f *FeedCache) SetGlobalFeed(ctx context.Context, rows []*model.ThreadFeedRow) error {
	return f.store.Set(ctx, cachekey.GlobalFeed(), rows, feedCacheTTL)
}

func (f *FeedCache) DeleteGlobalFeed(ctx context.Context) error {
	return f.store.Delete(ctx, cachekey.GlobalFeed())
}

func (f *FeedCache) GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error) {
	var rows []*model.ThreadFeedRow
	if err := f.store.Get(ctx, cachekey.UserFeed(authorID, mediaOnly), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (f *FeedCache) SetUserFeed(ctx context.Context, authorID int64, mediaOnly bool, rows []*model.ThreadFeedRow) error {
	return f.store.Set(ctx, cachekey.UserFeed(authorID, mediaOnly), rows, feedCacheTTL)
}

func (f *FeedCache) DeleteUserFeed(ctx context.Context, authorID int64, mediaOnly bool) error {
	return f.store.Delete(ctx, cachekey.UserFeed(authorID, mediaOnly))
}
