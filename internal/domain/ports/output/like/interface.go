package like_repository

import "context"

//go:generate mockery --name Repository --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename LikeRepository.go
type Repository interface {
	Create(ctx context.Context, userID, threadID int64) error
	Delete(ctx context.Context, userID, threadID int64) error
	DeleteByThread(ctx context.Context, threadID int64) error
	Exists(ctx context.Context, userID, threadID int64) (bool, error)
	CountByThread(ctx context.Context, threadID int64) (int64, error)
}
