package memory

import (
	"context"
	"sort"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
)

type FollowRepository struct {
	db *Database
}

func NewFollowRepository(db *Database) *FollowRepository {
	return &FollowRepository{db: db}
}

func (f *FollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	key := followKey{followerID: followerID, followingID: followingID}
	if _, ok := f.db.follows[key]; ok {
		return custom_errors.ErrAlreadyFollowing
	}
	f.db.follows[key] = struct{}{}
	return nil
}

func (f *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	key := followKey{followerID: followerID, followingID: followingID}
	if _, ok := f.db.follows[key]; !ok {
		return custom_errors.ErrFollowNotFound
	}
	delete(f.db.follows, key)
	return nil
}

func (f *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	f.db.mu.RLock()
	defer f.db.mu.RUnlock()

	_, ok := f.db.follows[followKey{followerID: followerID, followingID: followingID}]
	return ok, nil
}

func (f *FollowRepository) ListFollowers(ctx context.Context, userID int64) ([]*model.User, error) {
	f.db.mu.RLock()
	defer f.db.mu.RUnlock()

	users := make([]*model.User, 0)
	for key := range f.db.follows {
		if key.followingID != userID {
			continue
		}
		if u, ok := f.db.users[key.followerID]; ok {
			userCopy := *u
			users = append(users, &userCopy)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *FollowRepository) ListFollowing(ctx context.Context, userID int64) ([]*model.User, error) {
	f.db.mu.RLock()
	defer f.db.mu.RUnlock()

	users := make([]*model.User, 0)
	for key := range f.db.follows {
		if key.followerID != userID {
			continue
		}
		if u, ok := f.db.users[key.followingID]; ok {
			userCopy := *u
			users = append(users, &userCopy)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
