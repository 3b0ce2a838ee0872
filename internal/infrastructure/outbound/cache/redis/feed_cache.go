package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"circle-backend/internal/custom_errors"
	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
)

// feedCacheTTL bounds staleness: even if every invalidation delete fails,
// a feed entry is treated as absent after this long.
const feedCacheTTL = 60 * time.Second

type FeedCache struct {
	client *Client
	log    ports.Logger
}

func NewFeedCache(client *Client, log ports.Logger) *FeedCache {
	return &FeedCache{
		client: client,
		log:    log,
	}
}

func (f *FeedCache) GetGlobalFeed(ctx context.Context) ([]*model.ThreadFeedRow, error) {
	var rows []*model.ThreadFeedRow
	err := f.client.Get(ctx, cachekey.GlobalFeed(), &rows)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get global feed from cache: %w", err)
	}
	return rows, nil
}

func (f *FeedCache) SetGlobalFeed(ctx context.Context, rows []*model.ThreadFeedRow) error {
	if err := f.client.Set(ctx, cachekey.GlobalFeed(), rows, feedCacheTTL); err != nil {
		return fmt.Errorf("failed to set global feed cache: %w", err)
	}
	f.log.Debug("Global feed cached",
		slog.Int("rows", len(rows)),
		slog.Duration("ttl", feedCacheTTL))
	return nil
}

func (f *FeedCache) DeleteGlobalFeed(ctx context.Context) error {
	if err := f.client.Delete(ctx, cachekey.GlobalFeed()); err != nil {
		return fmt.Errorf("failed to delete global feed cache: %w", err)
	}
	return nil
}

func (f *FeedCache) GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error) {
	var rows []*model.ThreadFeedRow
	err := f.client.Get(ctx, cachekey.UserFeed(authorID, mediaOnly), &rows)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get user feed from cache: %w", err)
	}
	return rows, nil
}

func (f *FeedCache) SetUserFeed(ctx context.Context, authorID int64, mediaOnly bool, rows []*model.ThreadFeedRow) error {
	if err := f.client.Set(ctx, cachekey.UserFeed(authorID, mediaOnly), rows, feedCacheTTL); err != nil {
		return fmt.Errorf("failed to set user feed cache: %w", err)
	}
	f.log.Debug("User feed cached",
		slog.Int64("author_id", authorID),
		slog.Bool("media_only", mediaOnly),
		slog.Int("rows", len(rows)))
	return nil
}

func (f *FeedCache) DeleteUserFeed(ctx context.Context, authorID int64, mediaOnly bool) error {
	if err := f.client.Delete(ctx, cachekey.UserFeed(authorID, mediaOnly)); err != nil {
		return fmt.Errorf("failed to delete user feed cache: %w", err)
	}
	return nil
}
