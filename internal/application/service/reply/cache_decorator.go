package reply_service

import (
	"context"
	"log/slog"

	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/reply"
	output "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/domain/ports/output/cache"
)

// ReplyServiceCacheDecorator invalidates the feed entries that carry the
// parent thread's reply count: the global feed and the thread author's
// unfiltered feed.
type ReplyServiceCacheDecorator struct {
	service   input.Service
	feedCache cache.FeedCache
	log       output.Logger
}

func NewReplyServiceCacheDecorator(
	service input.Service,
	feedCache cache.FeedCache,
	log output.Logger,
) input.Service {
	return &ReplyServiceCacheDecorator{
		service:   service,
		feedCache: feedCache,
		log:       log,
	}
}

func (d *ReplyServiceCacheDecorator) Create(ctx context.Context, dto *model.CreateReplyDTO) (*model.ReplyResult, error) {
	result, err := d.service.Create(ctx, dto)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ThreadAuthorID)
	return result, nil
}

func (d *ReplyServiceCacheDecorator) ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error) {
	return d.service.ListByThread(ctx, threadID)
}

func (d *ReplyServiceCacheDecorator) Update(ctx context.Context, userID, id int64, dto *model.UpdateReplyDTO) (*model.ReplyResult, error) {
	result, err := d.service.Update(ctx, userID, id, dto)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ThreadAuthorID)
	return result, nil
}

func (d *ReplyServiceCacheDecorator) Delete(ctx context.Context, userID, id int64) (*model.ReplyResult, error) {
	result, err := d.service.Delete(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ThreadAuthorID)
	return result, nil
}

func (d *ReplyServiceCacheDecorator) invalidate(ctx context.Context, threadAuthorID int64) {
	if err := d.feedCache.DeleteGlobalFeed(ctx); err != nil {
		d.log.Warn("Failed to invalidate global feed after reply change", slog.String("error", err.Error()))
	}
	if err := d.feedCache.DeleteUserFeed(ctx, threadAuthorID, false); err != nil {
		d.log.Warn("Failed to invalidate author feed after reply change",
			slog.Int64("author_id", threadAuthorID),
			slog.String("error", err.Error()))
	}
}
