package memory

import (
	"context"

	like_repository "circle-backend/internal/domain/ports/output/like"
	reply_repository "circle-backend/internal/domain/ports/output/reply"
	thread_repository "circle-backend/internal/domain/ports/output/thread"
	"circle-backend/internal/infrastructure/outbound/repository/postgres"
)

// UnitOfWork is a non-transactional stand-in: the underlying datastore is a
// single mutex-guarded map set, so commit and rollback are no-ops.
type UnitOfWork struct {
	db *Database
}

func NewUnitOfWork(db *Database) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &transaction{db: u.db}, nil
}

type transaction struct {
	db *Database
}

func (t *transaction) Commit(ctx context.Context) error   { return nil }
func (t *transaction) Rollback(ctx context.Context) error { return nil }

func (t *transaction) ThreadRepository() thread_repository.Repository {
	return NewThreadRepository(t.db)
}

func (t *transaction) ReplyRepository() reply_repository.Repository {
	return NewReplyRepository(t.db)
}

func (t *transaction) LikeRepository() like_repository.Repository {
	return NewLikeRepository(t.db)
}
