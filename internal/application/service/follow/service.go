package follow_service

import (
	"context"
	"fmt"
	"log/slog"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/follow"
	output "circle-backend/internal/domain/ports/output"
	follow_repository "circle-backend/internal/domain/ports/output/follow"
	user_repository "circle-backend/internal/domain/ports/output/user"
)

type FollowService struct {
	followRepo  follow_repository.Repository
	userRepo    user_repository.Repository
	broadcaster output.Broadcaster
	log         output.Logger
	metrics     output.MetricsProvider
}

func NewFollowService(
	followRepo follow_repository.Repository,
	userRepo user_repository.Repository,
	broadcaster output.Broadcaster,
	log output.Logger,
	metrics output.MetricsProvider,
) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		log:         log,
		metrics:     metrics,
	}
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return custom_errors.ErrSelfFollow
	}

	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return err
	}

	if err := s.followRepo.Create(ctx, followerID, followingID); err != nil {
		s.metrics.IncrementFollowOperations("follow", false)
		return err
	}
	s.metrics.IncrementFollowOperations("follow", true)

	s.log.Debug("User followed",
		slog.Int64("follower_id", followerID),
		slog.Int64("following_id", followingID))

	if follower, err := s.userRepo.GetByID(ctx, followerID); err == nil {
		s.broadcaster.Broadcast(model.Event{
			Type:    model.EventNotification,
			Message: fmt.Sprintf("%s started following you", follower.FullName),
			UserID:  followingID,
		})
	}

	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return custom_errors.ErrSelfFollow
	}

	if err := s.followRepo.Delete(ctx, followerID, followingID); err != nil {
		s.metrics.IncrementFollowOperations("unfollow", false)
		return err
	}
	s.metrics.IncrementFollowOperations("unfollow", true)
	return nil
}

func (s *FollowService) List(ctx context.Context, userID int64, listType input.ListType) ([]*model.FollowedUser, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	var (
		users []*model.User
		err   error
	)
	switch listType {
	case input.ListFollowers:
		users, err = s.followRepo.ListFollowers(ctx, userID)
	case input.ListFollowing:
		users, err = s.followRepo.ListFollowing(ctx, userID)
	default:
		return nil, custom_errors.ErrValidation
	}
	if err != nil {
		return nil, err
	}

	results := make([]*model.FollowedUser, 0, len(users))
	for _, u := range users {
		isFollowing := false
		if u.ID != userID {
			exists, followErr := s.followRepo.Exists(ctx, userID, u.ID)
			if followErr != nil {
				s.log.Warn("Failed to resolve follow state in list",
					slog.Int64("subject_id", u.ID),
					slog.String("error", followErr.Error()))
			} else {
				isFollowing = exists
			}
		}
		results = append(results, &model.FollowedUser{
			ID:          u.ID,
			Username:    u.Username,
			Name:        u.FullName,
			Avatar:      u.PhotoProfile,
			IsFollowing: isFollowing,
		})
	}
	return results, nil
}
