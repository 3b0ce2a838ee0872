package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
)

type ReplyRepository struct {
	db *Database
}

func NewReplyRepository(db *Database) *ReplyRepository {
	return &ReplyRepository{db: db}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *model.Reply) (*model.Reply, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	images := reply.Images
	if images == nil {
		images = []string{}
	}

	created := &model.Reply{
		ID:        r.db.nextReplyID,
		ThreadID:  reply.ThreadID,
		AuthorID:  reply.AuthorID,
		Content:   reply.Content,
		Images:    images,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.db.nextReplyID++
	r.db.replies[created.ID] = created

	result := *created
	return &result, nil
}

func (r *ReplyRepository) GetByID(ctx context.Context, id int64) (*model.Reply, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	reply, ok := r.db.replies[id]
	if !ok {
		return nil, custom_errors.ErrReplyNotFound
	}
	result := *reply
	return &result, nil
}

func (r *ReplyRepository) ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	replies := make([]*model.Reply, 0)
	for _, rp := range r.db.replies {
		if rp.ThreadID == threadID {
			replies = append(replies, rp)
		}
	}
	sort.Slice(replies, func(i, j int) bool {
		if replies[i].CreatedAt.Time.Equal(replies[j].CreatedAt.Time) {
			return replies[i].ID > replies[j].ID
		}
		return replies[i].CreatedAt.Time.After(replies[j].CreatedAt.Time)
	})

	detailed := make([]*model.ReplyDetailed, 0, len(replies))
	for _, rp := range replies {
		author := &model.AuthorInfo{ID: rp.AuthorID}
		if u, ok := r.db.users[rp.AuthorID]; ok {
			author = u.AuthorInfo()
		}
		replyCopy := *rp
		detailed = append(detailed, &model.ReplyDetailed{Reply: &replyCopy, Author: author})
	}
	return detailed, nil
}

func (r *ReplyRepository) Update(ctx context.Context, id int64, update *model.UpdateReplyDTO) (*model.Reply, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	reply, ok := r.db.replies[id]
	if !ok {
		return nil, custom_errors.ErrReplyNotFound
	}
	if update.Content == nil && update.Images == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}
	if update.Content != nil {
		reply.Content = *update.Content
	}
	if update.Images != nil {
		reply.Images = update.Images
	}
	reply.UpdatedAt = pgtype.Timestamp{Time: time.Now(), Valid: true}

	result := *reply
	return &result, nil
}

func (r *ReplyRepository) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.replies[id]; !ok {
		return custom_errors.ErrReplyNotFound
	}
	delete(r.db.replies, id)
	return nil
}

func (r *ReplyRepository) DeleteByThread(ctx context.Context, threadID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, rp := range r.db.replies {
		if rp.ThreadID == threadID {
			delete(r.db.replies, id)
		}
	}
	return nil
}
