package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
)

type ThreadRepository struct {
	db *Database
}

func NewThreadRepository(db *Database) *ThreadRepository {
	return &ThreadRepository{db: db}
}

func (t *ThreadRepository) Create(ctx context.Context, thread *model.Thread) (*model.Thread, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	images := thread.Images
	if images == nil {
		images = []string{}
	}

	created := &model.Thread{
		ID:        t.db.nextThreadID,
		AuthorID:  thread.AuthorID,
		Content:   thread.Content,
		Images:    images,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.db.nextThreadID++
	t.db.threads[created.ID] = created

	result := *created
	return &result, nil
}

func (t *ThreadRepository) GetByID(ctx context.Context, id int64) (*model.Thread, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	thread, ok := t.db.threads[id]
	if !ok {
		return nil, custom_errors.ErrThreadNotFound
	}
	result := *thread
	return &result, nil
}

func (t *ThreadRepository) Update(ctx context.Context, id int64, update *model.UpdateThreadDTO) (*model.Thread, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	thread, ok := t.db.threads[id]
	if !ok {
		return nil, custom_errors.ErrThreadNotFound
	}
	if update.Content == nil && update.Images == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}
	if update.Content != nil {
		thread.Content = update.Content
	}
	if update.Images != nil {
		thread.Images = update.Images
	}
	thread.UpdatedAt = pgtype.Timestamp{Time: time.Now(), Valid: true}

	result := *thread
	return &result, nil
}

func (t *ThreadRepository) Delete(ctx context.Context, id int64) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	if _, ok := t.db.threads[id]; !ok {
		return custom_errors.ErrThreadNotFound
	}
	delete(t.db.threads, id)
	return nil
}

func (t *ThreadRepository) FeedRows(ctx context.Context, limit int) ([]*model.ThreadFeedRow, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	threads := make([]*model.Thread, 0, len(t.db.threads))
	for _, th := range t.db.threads {
		threads = append(threads, th)
	}
	sort.Slice(threads, func(i, j int) bool {
		if threads[i].CreatedAt.Time.Equal(threads[j].CreatedAt.Time) {
			return threads[i].ID > threads[j].ID
		}
		return threads[i].CreatedAt.Time.After(threads[j].CreatedAt.Time)
	})

	if limit > 0 && len(threads) > limit {
		threads = threads[:limit]
	}

	return t.buildRows(threads), nil
}

func (t *ThreadRepository) UserFeedRows(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	threads := make([]*model.Thread, 0)
	for _, th := range t.db.threads {
		if th.AuthorID != authorID {
			continue
		}
		if mediaOnly && len(th.Images) == 0 {
			continue
		}
		threads = append(threads, th)
	}
	sort.Slice(threads, func(i, j int) bool {
		if threads[i].CreatedAt.Time.Equal(threads[j].CreatedAt.Time) {
			return threads[i].ID > threads[j].ID
		}
		return threads[i].CreatedAt.Time.After(threads[j].CreatedAt.Time)
	})

	return t.buildRows(threads), nil
}

func (t *ThreadRepository) buildRows(threads []*model.Thread) []*model.ThreadFeedRow {
	rows := make([]*model.ThreadFeedRow, 0, len(threads))
	for _, th := range threads {
		author := &model.AuthorInfo{ID: th.AuthorID}
		if u, ok := t.db.users[th.AuthorID]; ok {
			author = u.AuthorInfo()
		}
		rows = append(rows, &model.ThreadFeedRow{
			ID:          th.ID,
			Content:     th.Content,
			Images:      th.Images,
			Author:      author,
			CreatedAt:   th.CreatedAt,
			LikeUserIDs: t.db.likeUserIDs(th.ID),
			ReplyCount:  t.db.replyCount(th.ID),
		})
	}
	return rows
}
