package thread_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/outbound/repository/postgres/db"
)

type ThreadRepository struct {
	log ports.Logger
	db  db.PgDB
}

func NewThreadRepository(db db.PgDB, log ports.Logger) *ThreadRepository {
	return &ThreadRepository{db: db, log: log}
}

func (t *ThreadRepository) Create(ctx context.Context, thread *model.Thread) (*model.Thread, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	images := thread.Images
	if images == nil {
		images = []string{}
	}

	args := pgx.NamedArgs{
		"author_id":  thread.AuthorID,
		"content":    thread.Content,
		"images":     images,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO threads (author_id, content, images, created_at, updated_at)
		VALUES (@author_id, @content, @images, @created_at, @updated_at)
		RETURNING id, author_id, content, images, created_at, updated_at`

	var created model.Thread
	err := t.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.AuthorID,
		&created.Content,
		&created.Images,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		t.log.Error("Error creating thread", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (t *ThreadRepository) GetByID(ctx context.Context, id int64) (*model.Thread, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, author_id, content, images, created_at, updated_at
				FROM threads WHERE id = @id`

	thread := &model.Thread{}
	err := t.db.QueryRow(ctx, query, args).Scan(
		&thread.ID,
		&thread.AuthorID,
		&thread.Content,
		&thread.Images,
		&thread.CreatedAt,
		&thread.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			t.log.Debug("Thread not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrThreadNotFound
		}
		t.log.Error("Error getting thread by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return thread, nil
}

func (t *ThreadRepository) Update(ctx context.Context, id int64, update *model.UpdateThreadDTO) (*model.Thread, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.Images != nil {
		setClauses = append(setClauses, "images = @images")
		args["images"] = update.Images
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE threads SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, author_id, content, images, created_at, updated_at"

	var updated model.Thread
	err := t.db.QueryRow(ctx, query, args).Scan(
		&updated.ID,
		&updated.AuthorID,
		&updated.Content,
		&updated.Images,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrThreadNotFound
		}
		t.log.Error("Error updating thread", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return &updated, nil
}

func (t *ThreadRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	result, err := t.db.Exec(ctx, `DELETE FROM threads WHERE id = @id`, args)
	if err != nil {
		t.log.Error("Error deleting thread", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrThreadNotFound
	}
	return nil
}

const feedRowColumns = `
	t.id, t.content, t.images, t.created_at,
	u.id, u.username, u.full_name, u.photo_profile,
	COALESCE(array_agg(l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS like_user_ids,
	(SELECT COUNT(*) FROM replies r WHERE r.thread_id = t.id) AS reply_count`

func (t *ThreadRepository) FeedRows(ctx context.Context, limit int) ([]*model.ThreadFeedRow, error) {
	args := pgx.NamedArgs{"limit": limit}
	query := `
		SELECT ` + feedRowColumns + `
		FROM threads t
		JOIN users u ON u.id = t.author_id
		LEFT JOIN likes l ON l.thread_id = t.id
		GROUP BY t.id, u.id
		ORDER BY t.created_at DESC
		LIMIT @limit`

	return t.scanFeedRows(ctx, query, args)
}

func (t *ThreadRepository) UserFeedRows(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error) {
	args := pgx.NamedArgs{"author_id": authorID}
	where := "t.author_id = @author_id"
	if mediaOnly {
		where += " AND cardinality(t.images) > 0"
	}
	query := `
		SELECT ` + feedRowColumns + `
		FROM threads t
		JOIN users u ON u.id = t.author_id
		LEFT JOIN likes l ON l.thread_id = t.id
		WHERE ` + where + `
		GROUP BY t.id, u.id
		ORDER BY t.created_at DESC`

	return t.scanFeedRows(ctx, query, args)
}

func (t *ThreadRepository) scanFeedRows(ctx context.Context, query string, args pgx.NamedArgs) ([]*model.ThreadFeedRow, error) {
	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.log.Error("Error querying feed rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var feed []*model.ThreadFeedRow
	for rows.Next() {
		row := &model.ThreadFeedRow{Author: &model.AuthorInfo{}}
		err := rows.Scan(
			&row.ID,
			&row.Content,
			&row.Images,
			&row.CreatedAt,
			&row.Author.ID,
			&row.Author.Username,
			&row.Author.Name,
			&row.Author.ProfilePicture,
			&row.LikeUserIDs,
			&row.ReplyCount,
		)
		if err != nil {
			t.log.Error("Error scanning feed row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		feed = append(feed, row)
	}

	if err = rows.Err(); err != nil {
		t.log.Error("Error iterating feed rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return feed, nil
}
