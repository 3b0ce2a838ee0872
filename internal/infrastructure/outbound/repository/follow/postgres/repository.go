package follow_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/outbound/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type FollowRepository struct {
	log ports.Logger
	db  db.PgDB
}

func NewFollowRepository(db db.PgDB, log ports.Logger) *FollowRepository {
	return &FollowRepository{db: db, log: log}
}

func (f *FollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	args := pgx.NamedArgs{
		"follower_id":  followerID,
		"following_id": followingID,
		"created_at":   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `INSERT INTO follows (follower_id, following_id, created_at)
				VALUES (@follower_id, @following_id, @created_at)`

	if _, err := f.db.Exec(ctx, query, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return custom_errors.ErrAlreadyFollowing
		}
		f.log.Error("Error creating follow",
			slog.Int64("follower_id", followerID),
			slog.Int64("following_id", followingID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (f *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	args := pgx.NamedArgs{"follower_id": followerID, "following_id": followingID}
	result, err := f.db.Exec(ctx, `DELETE FROM follows WHERE follower_id = @follower_id AND following_id = @following_id`, args)
	if err != nil {
		f.log.Error("Error deleting follow",
			slog.Int64("follower_id", followerID),
			slog.Int64("following_id", followingID),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrFollowNotFound
	}
	return nil
}

func (f *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := pgx.NamedArgs{"follower_id": followerID, "following_id": followingID}
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = @follower_id AND following_id = @following_id)`

	var exists bool
	if err := f.db.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		f.log.Error("Error checking follow existence", slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

func (f *FollowRepository) ListFollowers(ctx context.Context, userID int64) ([]*model.User, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.email, u.photo_profile, u.cover_photo, u.bio, u.created_at, u.updated_at
		FROM follows fl
		JOIN users u ON u.id = fl.follower_id
		WHERE fl.following_id = @user_id
		ORDER BY fl.created_at DESC`

	return f.scanUsers(ctx, query, pgx.NamedArgs{"user_id": userID})
}

func (f *FollowRepository) ListFollowing(ctx context.Context, userID int64) ([]*model.User, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.email, u.photo_profile, u.cover_photo, u.bio, u.created_at, u.updated_at
		FROM follows fl
		JOIN users u ON u.id = fl.following_id
		WHERE fl.follower_id = @user_id
		ORDER BY fl.created_at DESC`

	return f.scanUsers(ctx, query, pgx.NamedArgs{"user_id": userID})
}

func (f *FollowRepository) scanUsers(ctx context.Context, query string, args pgx.NamedArgs) ([]*model.User, error) {
	rows, err := f.db.Query(ctx, query, args)
	if err != nil {
		f.log.Error("Error listing follows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.FullName,
			&user.Email,
			&user.PhotoProfile,
			&user.CoverPhoto,
			&user.Bio,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			f.log.Error("Error scanning follow row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		f.log.Error("Error iterating follow rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return users, nil
}
