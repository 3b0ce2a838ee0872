package thread_repository

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ThreadRepository.go
type Repository interface {
	Create(ctx context.Context, thread *model.Thread) (*model.Thread, error)
	GetByID(ctx context.Context, id int64) (*model.Thread, error)
	Update(ctx context.Context, id int64, update *model.UpdateThreadDTO) (*model.Thread, error)
	Delete(ctx context.Context, id int64) error

	// FeedRows returns the most recent threads joined with author display
	// data, liker ids and reply counts, newest first.
	FeedRows(ctx context.Context, limit int) ([]*model.ThreadFeedRow, error)
	// UserFeedRows returns one author's threads, optionally only those
	// carrying attached media.
	UserFeedRows(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error)
}
