package memory

import (
	"context"
	"fmt"
	"time"

	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
)

const profileCacheTTL = 60 * time.Second

type ProfileCache struct {
	store *Store
}

func NewProfileCache(store *Store) *ProfileCache {
	return &ProfileCache{store: store}
}

func (p *ProfileCache) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	var profile model.Profile
	if err := p.store.Get(ctx, cachekey.Profile(userID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *ProfileCache) SetProfile(ctx context.Context, profile *model.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}
	return p.store.Set(ctx, cachekey.Profile(profile.ID), profile, profileCacheTTL)
}

func (p *ProfileCache) DeleteProfile(ctx context.Context, userID int64) error {
	return p.store.Delete(ctx, cachekey.Profile(userID))
}
