package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"circle-backend/internal/custom_errors"
	"circle-backend/internal/domain/cachekey"
	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
)

const profileCacheTTL = 60 * time.Second

type ProfileCache struct {
	client *Client
	log    ports.Logger
}

func NewProfileCache(client *Client, log ports.Logger) *ProfileCache {
	return &ProfileCache{
		client: client,
		log:    log,
	}
}

func (p *ProfileCache) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	var profile model.Profile
	err := p.client.Get(ctx, cachekey.Profile(userID), &profile)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get profile from cache: %w", err)
	}
	return &profile, nil
}

func (p *ProfileCache) SetProfile(ctx context.Context, profile *model.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	if err := p.client.Set(ctx, cachekey.Profile(profile.ID), profile, profileCacheTTL); err != nil {
		return fmt.Errorf("failed to set profile cache: %w", err)
	}

	p.log.Debug("Profile cached",
		slog.Int64("user_id", profile.ID),
		slog.Duration("ttl", profileCacheTTL))
	return nil
}

func (p *ProfileCache) DeleteProfile(ctx context.Context, userID int64) error {
	if err := p.client.Delete(ctx, cachekey.Profile(userID)); err != nil {
		return fmt.Errorf("failed to delete profile from cache: %w", err)
	}
	return nil
}
