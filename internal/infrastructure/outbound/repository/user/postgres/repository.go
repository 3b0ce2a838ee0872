package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
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

const userColumns = `id, username, full_name, email, password_hash, photo_profile, cover_photo, bio, created_at, updated_at`

type UserRepository struct {
	log ports.Logger
	db  db.PgDB
}

func NewUserRepository(db db.PgDB, log ports.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"username":      user.Username,
		"full_name":     user.FullName,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"created_at":    now,
		"updated_at":    now,
	}

	query := `
		INSERT INTO users (username, full_name, email, password_hash, created_at, updated_at)
		VALUES (@username, @full_name, @email, @password_hash, @created_at, @updated_at)
		RETURNING ` + userColumns

	created, err := u.scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, custom_errors.ErrEmailExists
			}
			return nil, custom_errors.ErrUsernameExists
		}
		u.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return created, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	user, err := u.scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = @id`, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := pgx.NamedArgs{"email": email}
	user, err := u.scanUser(u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = @email`, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by email", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Username != nil {
		setClauses = append(setClauses, "username = @username")
		args["username"] = *update.Username
	}
	if update.FullName != nil {
		setClauses = append(setClauses, "full_name = @full_name")
		args["full_name"] = *update.FullName
	}
	if update.Bio != nil {
		setClauses = append(setClauses, "bio = @bio")
		args["bio"] = *update.Bio
	}
	if update.PhotoProfile != nil {
		setClauses = append(setClauses, "photo_profile = @photo_profile")
		args["photo_profile"] = *update.PhotoProfile
	}
	if update.CoverPhoto != nil {
		setClauses = append(setClauses, "cover_photo = @cover_photo")
		args["cover_photo"] = *update.CoverPhoto
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING " + userColumns

	updated, err := u.scanUser(u.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, custom_errors.ErrUsernameExists
		}
		u.log.Error("Error updating user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return updated, nil
}

func (u *UserRepository) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	args := pgx.NamedArgs{"id": id}
	query := `
		SELECT u.id, u.username, u.full_name, u.email, u.photo_profile, u.cover_photo, u.bio,
		       (SELECT COUNT(*) FROM follows WHERE following_id = u.id) AS follower_count,
		       (SELECT COUNT(*) FROM follows WHERE follower_id = u.id) AS following_count
		FROM users u WHERE u.id = @id`

	profile := &model.Profile{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&profile.ID,
		&profile.Username,
		&profile.Name,
		&profile.Email,
		&profile.Avatar,
		&profile.CoverPhoto,
		&profile.Bio,
		&profile.FollowerCount,
		&profile.FollowingCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("Profile not found", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting profile", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return profile, nil
}

func (u *UserRepository) Search(ctx context.Context, query string, limit int) ([]*model.User, error) {
	args := pgx.NamedArgs{
		"pattern": "%" + query + "%",
		"limit":   limit,
	}
	sql := `SELECT ` + userColumns + `
			FROM users
			WHERE username ILIKE @pattern OR full_name ILIKE @pattern
			ORDER BY username
			LIMIT @limit`

	rows, err := u.db.Query(ctx, sql, args)
	if err != nil {
		u.log.Error("Error searching users", slog.String("error", err.Error()))
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
			&user.PasswordHash,
			&user.PhotoProfile,
			&user.CoverPhoto,
			&user.Bio,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			u.log.Error("Error scanning user row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		u.log.Error("Error iterating user rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return users, nil
}

func (u *UserRepository) scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.PhotoProfile,
		&user.CoverPhoto,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
