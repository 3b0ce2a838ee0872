package like_service

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename LikeService.go
type Service interface {
	Like(ctx context.Context, userID, threadID int64) (*model.LikeResult, error)
	Unlike(ctx context.Context, userID, threadID int64) (*model.LikeResult, error)
}
