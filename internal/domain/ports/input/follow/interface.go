package follow_service

import (
	"context"

	model "circle-backend/internal/domain/models"
)

type ListType string

const (
	ListFollowers ListType = "followers"
	ListFollowing ListType = "following"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename FollowService.go
type Service interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	List(ctx context.Context, userID int64, listType ListType) ([]*model.FollowedUser, error)
}
