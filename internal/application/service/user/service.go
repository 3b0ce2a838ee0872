package user_service

import (
	"context"
	"log/slog"

	model "circle-backend/internal/domain/models"
	output "circle-backend/internal/domain/ports/output"
	follow_repository "circle-backend/internal/domain/ports/output/follow"
	user_repository "circle-backend/internal/domain/ports/output/user"
)

type UserService struct {
	userRepo   user_repository.Repository
	followRepo follow_repository.Repository
	log        output.Logger
}

func NewUserService(
	userRepo user_repository.Repository,
	followRepo follow_repository.Repository,
	log output.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		log:        log,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	return s.userRepo.GetProfile(ctx, userID)
}

func (s *UserService) IsFollowing(ctx context.Context, viewerID, subjectID int64) (bool, error) {
	if viewerID == subjectID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, viewerID, subjectID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, dto *model.UpdateProfileDTO) (*model.User, error) {
	updated, err := s.userRepo.Update(ctx, userID, dto)
	if err != nil {
		s.log.Error("Failed to update profile",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Search(ctx context.Context, viewerID int64, query string, limit int) ([]*model.FollowedUser, error) {
	users, err := s.userRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]*model.FollowedUser, 0, len(users))
	for _, u := range users {
		isFollowing := false
		if u.ID != viewerID {
			exists, followErr := s.followRepo.Exists(ctx, viewerID, u.ID)
			if followErr != nil {
				s.log.Warn("Failed to resolve follow state in search",
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
