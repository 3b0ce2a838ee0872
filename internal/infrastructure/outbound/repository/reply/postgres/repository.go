package reply_repository_postgres

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

type ReplyRepository struct {
	log ports.Logger
	db  db.PgDB
}

func NewReplyRepository(db db.PgDB, log ports.Logger) *ReplyRepository {
	return &ReplyRepository{db: db, log: log}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *model.Reply) (*model.Reply, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	images := reply.Images
	if images == nil {
		images = []string{}
	}

	args := pgx.NamedArgs{
		"thread_id":  reply.ThreadID,
		"author_id":  reply.AuthorID,
		"content":    reply.Content,
		"images":     images,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO replies (thread_id, author_id, content, images, created_at, updated_at)
		VALUES (@thread_id, @author_id, @content, @images, @created_at, @updated_at)
		RETURNING id, thread_id, author_id, content, images, created_at, updated_at`

	var created model.Reply
	err := r.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.ThreadID,
		&created.AuthorID,
		&created.Content,
		&created.Images,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Error creating reply", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (r *ReplyRepository) GetByID(ctx context.Context, id int64) (*model.Reply, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, thread_id, author_id, content, images, created_at, updated_at
				FROM replies WHERE id = @id`

	reply := &model.Reply{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&reply.ID,
		&reply.ThreadID,
		&reply.AuthorID,
		&reply.Content,
		&reply.Images,
		&reply.CreatedAt,
		&reply.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Reply not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrReplyNotFound
		}
		r.log.Error("Error getting reply by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return reply, nil
}

func (r *ReplyRepository) ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error) {
	args := pgx.NamedArgs{"thread_id": threadID}
	query := `
		SELECT rp.id, rp.thread_id, rp.author_id, rp.content, rp.images, rp.created_at, rp.updated_at,
		       u.id, u.username, u.full_name, u.photo_profile
		FROM replies rp
		JOIN users u ON u.id = rp.author_id
		WHERE rp.thread_id = @thread_id
		ORDER BY rp.created_at DESC`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.log.Error("Error listing replies", slog.Int64("thread_id", threadID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var replies []*model.ReplyDetailed
	for rows.Next() {
		detailed := &model.ReplyDetailed{
			Reply:  &model.Reply{},
			Author: &model.AuthorInfo{},
		}
		err := rows.Scan(
			&detailed.Reply.ID,
			&detailed.Reply.ThreadID,
			&detailed.Reply.AuthorID,
			&detailed.Reply.Content,
			&detailed.Reply.Images,
			&detailed.Reply.CreatedAt,
			&detailed.Reply.UpdatedAt,
			&detailed.Author.ID,
			&detailed.Author.Username,
			&detailed.Author.Name,
			&detailed.Author.ProfilePicture,
		)
		if err != nil {
			r.log.Error("Error scanning reply row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		replies = append(replies, detailed)
	}

	if err = rows.Err(); err != nil {
		r.log.Error("Error iterating reply rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return replies, nil
}

func (r *ReplyRepository) Update(ctx context.Context, id int64, update *model.UpdateReplyDTO) (*model.Reply, error) {
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

	query := "UPDATE replies SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, thread_id, author_id, content, images, created_at, updated_at"

	var updated model.Reply
	err := r.db.QueryRow(ctx, query, args).Scan(
		&updated.ID,
		&updated.ThreadID,
		&updated.AuthorID,
		&updated.Content,
		&updated.Images,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrReplyNotFound
		}
		r.log.Error("Error updating reply", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return &updated, nil
}

func (r *ReplyRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	result, err := r.db.Exec(ctx, `DELETE FROM replies WHERE id = @id`, args)
	if err != nil {
		r.log.Error("Error deleting reply", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrReplyNotFound
	}
	return nil
}

func (r *ReplyRepository) DeleteByThread(ctx context.Context, threadID int64) error {
	args := pgx.NamedArgs{"thread_id": threadID}
	if _, err := r.db.Exec(ctx, `DELETE FROM replies WHERE thread_id = @thread_id`, args); err != nil {
		r.log.Error("Error deleting replies by thread", slog.Int64("thread_id", threadID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}
