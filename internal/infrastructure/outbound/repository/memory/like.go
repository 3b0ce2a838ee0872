package memory

import (
	"context"

	"circle-backend/internal/custom_errors"
)

type LikeRepository struct {
	db *Database
}

func NewLikeRepository(db *Database) *LikeRepository {
	return &LikeRepository{db: db}
}

func (l *LikeRepository) Create(ctx context.Context, userID, threadID int64) error {
	l.db.mu.Lock()
	defer l.db.mu.Unlock()

	key := likeKey{userID: userID, threadID: threadID}
	if _, ok := l.db.likes[key]; ok {
		return custom_errors.ErrAlreadyLiked
	}
	l.db.likes[key] = struct{}{}
	return nil
}

func (l *LikeRepository) Delete(ctx context.Context, userID, threadID int64) error {
	l.db.mu.Lock()
	defer l.db.mu.Unlock()

	key := likeKey{userID: userID, threadID: threadID}
	if _, ok := l.db.likes[key]; !ok {
		return custom_errors.ErrLikeNotFound
	}
	delete(l.db.likes, key)
	return nil
}

func (l *LikeRepository) DeleteByThread(ctx context.Context, threadID int64) error {
	l.db.mu.Lock()
	defer l.db.mu.Unlock()

	for key := range l.db.likes {
		if key.threadID == threadID {
			delete(l.db.likes, key)
		}
	}
	return nil
}

func (l *LikeRepository) Exists(ctx context.Context, userID, threadID int64) (bool, error) {
	l.db.mu.RLock()
	defer l.db.mu.RUnlock()

	_, ok := l.db.likes[likeKey{userID: userID, threadID: threadID}]
	return ok, nil
}

func (l *LikeRepository) CountByThread(ctx context.Context, threadID int64) (int64, error) {
	l.db.mu.RLock()
	defer l.db.mu.RUnlock()

	var count int64
	for key := range l.db.likes {
		if key.threadID == threadID {
			count++
		}
	}
	return count, nil
}
