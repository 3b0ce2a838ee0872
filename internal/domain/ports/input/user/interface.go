package user_service

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UserService.go
type Service interface {
	GetProfile(ctx context.Context, userID int64) (*model.Profile, error)
	// IsFollowing is viewer-relative and therefore always resolved live,
	// never from a cached profile.
	IsFollowing(ctx context.Context, viewerID, subjectID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, dto *model.UpdateProfileDTO) (*model.User, error)
	Search(ctx context.Context, viewerID int64, query string, limit int) ([]*model.FollowedUser, error)
}
