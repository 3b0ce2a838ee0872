package user_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/user"
	output "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/domain/ports/output/cache"
)

// UserServiceCacheDecorator serves profiles read-through and, on profile
// edits, fans invalidation out to the feed caches as well: author display
// fields are denormalized into every cached feed row, so a profile change
// makes those rows stale too.
type UserServiceCacheDecorator struct {
	service      input.Service
	profileCache cache.ProfileCache
	feedCache    cache.FeedCache
	log          output.Logger
	metrics      output.MetricsProvider
}

func NewUserServiceCacheDecorator(
	service input.Service,
	profileCache cache.ProfileCache,
	feedCache cache.FeedCache,
	log output.Logger,
	metrics output.MetricsProvider,
) input.Service {
	return &UserServiceCacheDecorator{
		service:      service,
		profileCache: profileCache,
		feedCache:    feedCache,
		log:          log,
		metrics:      metrics,
	}
}

func (d *UserServiceCacheDecorator) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	start := time.Now()
	cached, err := d.profileCache.GetProfile(ctx, userID)
	d.metrics.RecordCacheOperationDuration("profile_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get profile from cache",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
	}

	profile, err := d.service.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.profileCache.SetProfile(ctx, profile); err != nil {
		d.log.Warn("Failed to cache profile",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("profile_set", time.Since(setStart))

	return profile, nil
}

func (d *UserServiceCacheDecorator) IsFollowing(ctx context.Context, viewerID, subjectID int64) (bool, error) {
	// Viewer-relative, never cached.
	return d.service.IsFollowing(ctx, viewerID, subjectID)
}

func (d *UserServiceCacheDecorator) UpdateProfile(ctx context.Context, userID int64, dto *model.UpdateProfileDTO) (*model.User, error) {
	updated, err := d.service.UpdateProfile(ctx, userID, dto)
	if err != nil {
		return nil, err
	}

	if err := d.profileCache.DeleteProfile(ctx, userID); err != nil {
		d.log.Warn("Failed to invalidate profile cache",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
	}
	if err := d.feedCache.DeleteGlobalFeed(ctx); err != nil {
		d.log.Warn("Failed to invalidate global feed after profile update", slog.String("error", err.Error()))
	}
	if err := d.feedCache.DeleteUserFeed(ctx, userID, false); err != nil {
		d.log.Warn("Failed to invalidate user feed after profile update",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
	}
	if err := d.feedCache.DeleteUserFeed(ctx, userID, true); err != nil {
		d.log.Warn("Failed to invalidate user media feed after profile update",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
	}

	return updated, nil
}

func (d *UserServiceCacheDecorator) Search(ctx context.Context, viewerID int64, query string, limit int) ([]*model.FollowedUser, error) {
	return d.service.Search(ctx, viewerID, query, limit)
}
