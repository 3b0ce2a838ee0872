package follow_service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	input "circle-backend/internal/domain/ports/input/follow"
	"circle-backend/internal/infrastructure/logger"
	"circle-backend/internal/infrastructure/outbound/metrics/noop"
	"circle-backend/internal/infrastructure/outbound/repository/memory"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []model.Event
}

func (b *recordingBroadcaster) Broadcast(event model.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBroadcaster) Events() []model.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Event(nil), b.events...)
}

type followFixture struct {
	service     *FollowService
	db          *memory.Database
	broadcaster *recordingBroadcaster
	alice       *model.User
	bob         *model.User
}

func newFollowFixture(t *testing.T) *followFixture {
	t.Helper()
	db := memory.NewDatabase()
	broadcaster := &recordingBroadcaster{}
	ctx := context.Background()

	users := memory.NewUserRepository(db)
	alice, err := users.Create(ctx, &model.User{Username: "alice", FullName: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, &model.User{Username: "bob", FullName: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	return &followFixture{
		service: NewFollowService(
			memory.NewFollowRepository(db),
			users,
			broadcaster,
			logger.New("test"),
			noop.NewNoopMetricsProvider(),
		),
		db:          db,
		broadcaster: broadcaster,
		alice:       alice,
		bob:         bob,
	}
}

func TestFollowService_Follow(t *testing.T) {
	f := newFollowFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Follow(ctx, f.alice.ID, f.bob.ID))

	following, err := memory.NewFollowRepository(f.db).Exists(ctx, f.alice.ID, f.bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	events := f.broadcaster.Events()
	require.Len(t, events, 1)
	assert.Equal(t, model.EventNotification, events[0].Type)
	assert.Equal(t, f.bob.ID, events[0].UserID)
}

func TestFollowService_Rules(t *testing.T) {
	f := newFollowFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.service.Follow(ctx, f.alice.ID, f.alice.ID), custom_errors.ErrSelfFollow)
	assert.ErrorIs(t, f.service.Follow(ctx, f.alice.ID, 9999), custom_errors.ErrUserNotFound)

	require.NoError(t, f.service.Follow(ctx, f.alice.ID, f.bob.ID))
	assert.ErrorIs(t, f.service.Follow(ctx, f.alice.ID, f.bob.ID), custom_errors.ErrAlreadyFollowing)

	assert.ErrorIs(t, f.service.Unfollow(ctx, f.bob.ID, f.alice.ID), custom_errors.ErrFollowNotFound)
	require.NoError(t, f.service.Unfollow(ctx, f.alice.ID, f.bob.ID))
}

func TestFollowService_List(t *testing.T) {
	f := newFollowFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Follow(ctx, f.alice.ID, f.bob.ID))
	require.NoError(t, f.service.Follow(ctx, f.bob.ID, f.alice.ID))

	following, err := f.service.List(ctx, f.alice.ID, input.ListFollowing)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)
	assert.True(t, following[0].IsFollowing)

	followers, err := f.service.List(ctx, f.alice.ID, input.ListFollowers)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].Username)

	_, err = f.service.List(ctx, f.alice.ID, input.ListType("strangers"))
	assert.ErrorIs(t, err, custom_errors.ErrValidation)
}
