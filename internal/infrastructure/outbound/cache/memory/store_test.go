package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/custom_errors"
)

func TestStore_SetGetDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", map[string]int{"n": 1}, time.Minute))

	var got map[string]int
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, 1, got["n"])

	require.NoError(t, store.Delete(ctx, "k"))
	assert.ErrorIs(t, store.Get(ctx, "k", &got), custom_errors.ErrCacheMiss)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestStore_TTL(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	base := time.Now()
	store.SetClock(func() time.Time { return base })
	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))

	var got string
	store.SetClock(func() time.Time { return base.Add(59 * time.Second) })
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, "v", got)

	store.SetClock(func() time.Time { return base.Add(time.Minute) })
	assert.ErrorIs(t, store.Get(ctx, "k", &got), custom_errors.ErrCacheMiss)
	assert.False(t, store.Has("k"))
}

func TestStore_Unavailable(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	store.SetUnavailable(true)

	var got string
	assert.ErrorIs(t, store.Get(ctx, "k", &got), custom_errors.ErrCacheUnavailable)
	assert.ErrorIs(t, store.Set(ctx, "k", "v", time.Minute), custom_errors.ErrCacheUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, "k"), custom_errors.ErrCacheUnavailable)

	// Recovery restores the surviving entry.
	store.SetUnavailable(false)
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, "v", got)
}
