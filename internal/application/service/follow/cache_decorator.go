package follow_service

import (
	"context"
	"log/slog"

	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/follow"
	output "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/domain/ports/output/cache"
)

// FollowServiceCacheDecorator drops both cached profiles on a follow
// change: each side's follower or following count moved.
type FollowServiceCacheDecorator struct {
	service      input.Service
	profileCache cache.ProfileCache
	log          output.Logger
}

func NewFollowServiceCacheDecorator(
	service input.Service,
	profileCache cache.ProfileCache,
	log output.Logger,
) input.Service {
	return &FollowServiceCacheDecorator{
		service:      service,
		profileCache: profileCache,
		log:          log,
	}
}

func (d *FollowServiceCacheDecorator) Follow(ctx context.Context, followerID, followingID int64) error {
	if err := d.service.Follow(ctx, followerID, followingID); err != nil {
		return err
	}
	d.invalidate(ctx, followerID, followingID)
	return nil
}

func (d *FollowServiceCacheDecorator) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if err := d.service.Unfollow(ctx, followerID, followingID); err != nil {
		return err
	}
	d.invalidate(ctx, followerID, followingID)
	return nil
}

func (d *FollowServiceCacheDecorator) List(ctx context.Context, userID int64, listType input.ListType) ([]*model.FollowedUser, error) {
	return d.service.List(ctx, userID, listType)
}

func (d *FollowServiceCacheDecorator) invalidate(ctx context.Context, followerID, followingID int64) {
	if err := d.profileCache.DeleteProfile(ctx, followerID); err != nil {
		d.log.Warn("Failed to invalidate follower profile cache",
			slog.Int64("user_id", followerID),
			slog.String("error", err.Error()))
	}
	if err := d.profileCache.DeleteProfile(ctx, followingID); err != nil {
		d.log.Warn("Failed to invalidate following profile cache",
			slog.Int64("user_id", followingID),
			slog.String("error", err.Error()))
	}
}
