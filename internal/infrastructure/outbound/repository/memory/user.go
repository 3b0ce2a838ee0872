package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
)

type UserRepository struct {
	db *Database
}

func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	for _, existing := range u.db.users {
		if existing.Email == user.Email {
			return nil, custom_errors.ErrEmailExists
		}
		if existing.Username == user.Username {
			return nil, custom_errors.ErrUsernameExists
		}
	}

	now := pgtype.Timestamp{Time: time.Now(), Valid: true}
	created := &model.User{
		ID:           u.db.nextUserID,
		Username:     user.Username,
		FullName:     user.FullName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	u.db.nextUserID++
	u.db.users[created.ID] = created

	result := *created
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.db.mu.RLock()
	defer u.db.mu.RUnlock()

	user, ok := u.db.users[id]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.db.mu.RLock()
	defer u.db.mu.RUnlock()

	for _, user := range u.db.users {
		if user.Email == email {
			result := *user
			return &result, nil
		}
	}
	return nil, custom_errors.ErrUserNotFound
}

func (u *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	user, ok := u.db.users[id]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.PhotoProfile != nil {
		user.PhotoProfile = update.PhotoProfile
	}
	if update.CoverPhoto != nil {
		user.CoverPhoto = update.CoverPhoto
	}
	user.UpdatedAt = pgtype.Timestamp{Time: time.Now(), Valid: true}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	u.db.mu.RLock()
	defer u.db.mu.RUnlock()

	user, ok := u.db.users[id]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}

	var followers, following int64
	for key := range u.db.follows {
		if key.followingID == id {
			followers++
		}
		if key.followerID == id {
			following++
		}
	}

	return &model.Profile{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.FullName,
		Email:          user.Email,
		Avatar:         user.PhotoProfile,
		CoverPhoto:     user.CoverPhoto,
		Bio:            user.Bio,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}

func (u *UserRepository) Search(ctx context.Context, query string, limit int) ([]*model.User, error) {
	u.db.mu.RLock()
	defer u.db.mu.RUnlock()

	q := strings.ToLower(query)
	users := make([]*model.User, 0)
	for _, user := range u.db.users {
		if strings.Contains(strings.ToLower(user.Username), q) ||
			strings.Contains(strings.ToLower(user.FullName), q) {
			userCopy := *user
			users = append(users, &userCopy)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}
