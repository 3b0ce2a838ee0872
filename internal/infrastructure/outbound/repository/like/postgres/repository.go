package like_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"circle-backend/internal/custom_errors"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/outbound/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type LikeRepository struct {
	log ports.Logger
	db  db.PgDB
}

func NewLikeRepository(db db.PgDB, log ports.Logger) *LikeRepository {
	return &LikeRepository{db: db, log: log}
}

func (l *LikeRepository) Create(ctx context.Context, userID, threadID int64) error {
	args := pgx.NamedArgs{
		"user_id":    userID,
		"thread_id":  threadID,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `INSERT INTO likes (user_id, thread_id, created_at)
				VALUES (@user_id, @thread_id, @created_at)`

	if _, err := l.db.Exec(ctx, query, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return custom_errors.ErrAlreadyLiked
		}
		l.log.Error("Error creating like",
			slog.Int64("user_id", userID),
			slog.Int64("thread_id", threadID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (l *LikeRepository) Delete(ctx context.Context, userID, threadID int64) error {
	args := pgx.NamedArgs{"user_id": userID, "thread_id": threadID}
	result, err := l.db.Exec(ctx, `DELETE FROM likes WHERE user_id = @user_id AND thread_id = @thread_id`, args)
	if err != nil {
		l.log.Error("Error deleting like",
			slog.Int64("user_id", userID),
			slog.Int64("thread_id", threadID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrLikeNotFound
	}
	return nil
}

func (l *LikeRepository) DeleteByThread(ctx context.Context, threadID int64) error {
	args := pgx.NamedArgs{"thread_id": threadID}
	if _, err := l.db.Exec(ctx, `DELETE FROM likes WHERE thread_id = @thread_id`, args); err != nil {
		l.log.Error("Error deleting likes by thread", slog.Int64("thread_id", threadID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (l *LikeRepository) Exists(ctx context.Context, userID, threadID int64) (bool, error) {
	args := pgx.NamedArgs{"user_id": userID, "thread_id": threadID}
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = @user_id AND thread_id = @thread_id)`

	var exists bool
	if err := l.db.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		l.log.Error("Error checking like existence", slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

func (l *LikeRepository) CountByThread(ctx context.Context, threadID int64) (int64, error) {
	args := pgx.NamedArgs{"thread_id": threadID}
	var count int64
	if err := l.db.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE thread_id = @thread_id`, args).Scan(&count); err != nil {
		l.log.Error("Error counting likes", slog.Int64("thread_id", threadID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	return count, nil
}
