package cache

import (
	"context"

	model "circle-backend/internal/domain/models"
)

// FeedCache stores viewer-independent feed row-sets. Implementations must
// return custom_errors.ErrCacheMiss for absent keys; any other error means
// the backend itself failed and callers degrade to the store.
//
//go:generate mockery --name FeedCache --dir . --output ../../../../mocks/cache --outpkg mocks --with-expecter --filename FeedCache.go
type FeedCache interface {
	GetGlobalFeed(ctx context.Context) ([]*model.ThreadFeedRow, error)
	SetGlobalFeed(ctx context.Context, rows []*model.ThreadFeedRow) error
	DeleteGlobalFeed(ctx context.Context) error

	GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error)
	SetUserFeed(ctx context.Context, authorID int64, mediaOnly bool, rows []*model.ThreadFeedRow) error
	DeleteUserFeed(ctx context.Context, authorID int64, mediaOnly bool) error
}
