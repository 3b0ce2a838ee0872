package thread_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/thread"
	output "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/domain/ports/output/cache"
)

// ThreadServiceCacheDecorator puts the read-through cache in front of the
// feed reads and invalidates the affected feed keys after every mutation,
// before the caller sees the result. The cache is never authoritative: any
// cache failure degrades to a direct store read.
type ThreadServiceCacheDecorator struct {
	service   input.Service
	feedCache cache.FeedCache
	log       output.Logger
	metrics   output.MetricsProvider
}

func NewThreadServiceCacheDecorator(
	service input.Service,
	feedCache cache.FeedCache,
	log output.Logger,
	metrics output.MetricsProvider,
) input.Service {
	return &ThreadServiceCacheDecorator{
		service:   service,
		feedCache: feedCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *ThreadServiceCacheDecorator) Create(ctx context.Context, dto *model.CreateThreadDTO) (*model.Thread, error) {
	created, err := d.service.Create(ctx, dto)
	if err != nil {
		return nil, err
	}

	d.invalidateGlobalFeed(ctx)
	d.invalidateUserFeed(ctx, created.AuthorID, false)
	if created.HasMedia() {
		d.invalidateUserFeed(ctx, created.AuthorID, true)
	}

	return created, nil
}

func (d *ThreadServiceCacheDecorator) GetByID(ctx context.Context, id int64) (*model.Thread, error) {
	return d.service.GetByID(ctx, id)
}

func (d *ThreadServiceCacheDecorator) GetFeed(ctx context.Context) ([]*model.ThreadFeedRow, error) {
	start := time.Now()
	rows, err := d.feedCache.GetGlobalFeed(ctx)
	d.metrics.RecordCacheOperationDuration("feed_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return rows, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		// Backend failure, not a miss: absorb and fall through to the store.
		d.log.Warn("Failed to get global feed from cache", slog.String("error", err.Error()))
	}

	rows, err = d.service.GetFeed(ctx)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.feedCache.SetGlobalFeed(ctx, rows); err != nil {
		d.log.Warn("Failed to cache global feed", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("feed_set", time.Since(setStart))

	return rows, nil
}

func (d *ThreadServiceCacheDecorator) GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error) {
	start := time.Now()
	rows, err := d.feedCache.GetUserFeed(ctx, authorID, mediaOnly)
	d.metrics.RecordCacheOperationDuration("user_feed_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return rows, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get user feed from cache",
			slog.Int64("author_id", authorID),
			slog.String("error", err.Error()))
	}

	rows, err = d.service.GetUserFeed(ctx, authorID, mediaOnly)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.feedCache.SetUserFeed(ctx, authorID, mediaOnly, rows); err != nil {
		d.log.Warn("Failed to cache user feed",
			slog.Int64("author_id", authorID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("user_feed_set", time.Since(setStart))

	return rows, nil
}

func (d *ThreadServiceCacheDecorator) Update(ctx context.Context, userID, id int64, dto *model.UpdateThreadDTO) (*model.Thread, error) {
	updated, err := d.service.Update(ctx, userID, id, dto)
	if err != nil {
		return nil, err
	}

	// Edits may add or remove media, so both per-author entries go.
	d.invalidateGlobalFeed(ctx)
	d.invalidateUserFeed(ctx, updated.AuthorID, false)
	d.invalidateUserFeed(ctx, updated.AuthorID, true)

	return updated, nil
}

func (d *ThreadServiceCacheDecorator) Delete(ctx context.Context, userID, id int64) error {
	if err := d.service.Delete(ctx, userID, id); err != nil {
		return err
	}

	// Ownership is enforced by the inner service, so the actor is the author.
	d.invalidateGlobalFeed(ctx)
	d.invalidateUserFeed(ctx, userID, false)
	d.invalidateUserFeed(ctx, userID, true)

	return nil
}

func (d *ThreadServiceCacheDecorator) invalidateGlobalFeed(ctx context.Context) {
	start := time.Now()
	if err := d.feedCache.DeleteGlobalFeed(ctx); err != nil {
		d.log.Warn("Failed to invalidate global feed cache", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("feed_delete", time.Since(start))
}

func (d *ThreadServiceCacheDecorator) invalidateUserFeed(ctx context.Context, authorID int64, mediaOnly bool) {
	start := time.Now()
	if err := d.feedCache.DeleteUserFeed(ctx, authorID, mediaOnly); err != nil {
		d.log.Warn("Failed to invalidate user feed cache",
			slog.Int64("author_id", authorID),
			slog.Bool("media_only", mediaOnly),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("feed_delete", time.Since(start))
}
