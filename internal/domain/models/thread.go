package model

import "github.com/jackc/pgx/v5/pgtype"

type Thread struct {
	ID        int64            `json:"id"`
	AuthorID  int64            `json:"author_id"`
	Content   *string          `json:"content,omitempty"`
	Images    []string         `json:"images"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

func (t *Thread) HasMedia() bool {
	return len(t.Images) > 0
}
