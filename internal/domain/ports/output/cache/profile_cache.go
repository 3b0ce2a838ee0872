package cache

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name ProfileCache --dir . --output ../../../../mocks/cache --outpkg mocks --with-expecter --filename ProfileCache.go
type ProfileCache interface {
	GetProfile(ctx context.Context, userID int64) (*model.Profile, error)
	SetProfile(ctx context.Context, profile *model.Profile) error
	DeleteProfile(ctx context.Context, userID int64) error
}
