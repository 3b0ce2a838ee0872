package user_repository

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UserRepository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error)
	// GetProfile returns the public profile with follower/following counts
	// joined in.
	GetProfile(ctx context.Context, id int64) (*model.Profile, error)
	Search(ctx context.Context, query string, limit int) ([]*model.User, error)
}
