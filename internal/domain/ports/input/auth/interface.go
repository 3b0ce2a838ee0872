package auth_service

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename AuthService.go
type Service interface {
	Register(ctx context.Context, dto *model.RegisterDTO) (*model.AuthToken, error)
	Login(ctx context.Context, dto *model.LoginDTO) (*model.AuthToken, error)
	// VerifyToken parses a bearer token and returns the user id it carries.
	VerifyToken(ctx context.Context, token string) (int64, error)
}
