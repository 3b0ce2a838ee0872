package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ports "circle-backend/internal/domain/ports/output"
	like_repository "circle-backend/internal/domain/ports/output/like"
	reply_repository "circle-backend/internal/domain/ports/output/reply"
	thread_repository "circle-backend/internal/domain/ports/output/thread"
	like_repository_postgres "circle-backend/internal/infrastructure/outbound/repository/like/postgres"
	reply_repository_postgres "circle-backend/internal/infrastructure/outbound/repository/reply/postgres"
	thread_repository_postgres "circle-backend/internal/infrastructure/outbound/repository/thread/postgres"
)

// UnitOfWork groups the repositories touched by a thread deletion (likes,
// replies, the thread itself) into one transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	ThreadRepository() thread_repository.Repository
	ReplyRepository() reply_repository.Repository
	LikeRepository() like_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) ThreadRepository() thread_repository.Repository {
	return thread_repository_postgres.NewThreadRepository(t.tx, t.log)
}

func (t *PostgresTransaction) ReplyRepository() reply_repository.Repository {
	return reply_repository_postgres.NewReplyRepository(t.tx, t.log)
}

func (t *PostgresTransaction) LikeRepository() like_repository.Repository {
	return like_repository_postgres.NewLikeRepository(t.tx, t.log)
}
