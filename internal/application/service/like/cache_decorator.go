package like_service

import (
	"context"
	"log/slog"

	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/like"
	output "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/domain/ports/output/cache"
)

// LikeServiceCacheDecorator invalidates every feed entry that shows the
// liked thread's counters: the global feed and both of the author's feeds.
type LikeServiceCacheDecorator struct {
	service   input.Service
	feedCache cache.FeedCache
	log       output.Logger
}

func NewLikeServiceCacheDecorator(
	service input.Service,
	feedCache cache.FeedCache,
	log output.Logger,
) input.Service {
	return &LikeServiceCacheDecorator{
		service:   service,
		feedCache: feedCache,
		log:       log,
	}
}

func (d *LikeServiceCacheDecorator) Like(ctx context.Context, userID, threadID int64) (*model.LikeResult, error) {
	result, err := d.service.Like(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ThreadAuthorID)
	return result, nil
}

func (d *LikeServiceCacheDecorator) Unlike(ctx context.Context, userID, threadID int64) (*model.LikeResult, error) {
	result, err := d.service.Unlike(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ThreadAuthorID)
	return result, nil
}

func (d *LikeServiceCacheDecorator) invalidate(ctx context.Context, authorID int64) {
	if err := d.feedCache.DeleteGlobalFeed(ctx); err != nil {
		d.log.Warn("Failed to invalidate global feed after like change", slog.String("error", err.Error()))
	}
	if err := d.feedCache.DeleteUserFeed(ctx, authorID, false); err != nil {
		d.log.Warn("Failed to invalidate author feed after like change",
			slog.Int64("author_id", authorID),
			slog.String("error", err.Error()))
	}
	if err := d.feedCache.DeleteUserFeed(ctx, authorID, true); err != nil {
		d.log.Warn("Failed to invalidate author media feed after like change",
			slog.Int64("author_id", authorID),
			slog.String("error", err.Error()))
	}
}
