package model

import "github.com/jackc/pgx/v5/pgtype"

type Reply struct {
	ID        int64            `json:"id"`
	ThreadID  int64            `json:"thread_id"`
	AuthorID  int64            `json:"author_id"`
	Content   string           `json:"content"`
	Images    []string         `json:"images"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

// ReplyDetailed is a reply joined with its author's display data.
type ReplyDetailed struct {
	Reply  *Reply      `json:"reply"`
	Author *AuthorInfo `json:"author"`
}

// ReplyResult is a reply mutation outcome together with the parent thread's
// author, which the cache layer needs for invalidation.
type ReplyResult struct {
	Reply          *Reply
	ThreadID       int64
	ThreadAuthorID int64
}

type CreateReplyDTO struct {
	AuthorID int64    `json:"-"`
	ThreadID int64    `json:"thread_id" validate:"required,gt=0"`
	Content  string   `json:"content" validate:"required_without=Images,omitempty,max=280"`
	Images   []string `json:"images,omitempty" validate:"omitempty,dive,uri"`
}

type UpdateReplyDTO struct {
	Content *string  `json:"content,omitempty" validate:"omitempty,min=1,max=280"`
	Images  []string `json:"images,omitempty" validate:"omitempty,dive,uri"`
}
