package follow_repository

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename FollowRepository.go
type Repository interface {
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	// ListFollowers returns users following userID; ListFollowing the users
	// userID follows. IsFollowing on the entries is left for the service to
	// resolve against the requesting viewer.
	ListFollowers(ctx context.Context, userID int64) ([]*model.User, error)
	ListFollowing(ctx context.Context, userID int64) ([]*model.User, error)
}
