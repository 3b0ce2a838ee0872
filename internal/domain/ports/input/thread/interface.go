package thread_service

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ThreadService.go
type Service interface {
	Create(ctx context.Context, dto *model.CreateThreadDTO) (*model.Thread, error)
	GetByID(ctx context.Context, id int64) (*model.Thread, error)
	// GetFeed returns the viewer-independent recent window; callers slice it
	// to the requested page size and derive viewer-relative fields.
	GetFeed(ctx context.Context) ([]*model.ThreadFeedRow, error)
	GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error)
	Update(ctx context.Context, userID, id int64, dto *model.UpdateThreadDTO) (*model.Thread, error)
	Delete(ctx context.Context, userID, id int64) error
}
