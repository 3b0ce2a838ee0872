package thread_service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
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

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*ThreadService, *memory.Database, *recordingBroadcaster) {
	t.Helper()
	db := memory.NewDatabase()
	broadcaster := &recordingBroadcaster{}
	svc := NewThreadService(
		memory.NewThreadRepository(db),
		memory.NewUnitOfWork(db),
		broadcaster,
		logger.New("test"),
		noop.NewNoopMetricsProvider(),
		100,
	)
	return svc, db, broadcaster
}

func seedUser(t *testing.T, db *memory.Database, username string) *model.User {
	t.Helper()
	created, err := memory.NewUserRepository(db).Create(context.Background(), &model.User{
		Username: username,
		FullName: username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return created
}

func TestThreadService_Create(t *testing.T) {
	tests := []struct {
		name         string
		dto          *model.CreateThreadDTO
		wantErr      error
		wantHasMedia bool
	}{
		{
			name: "content only",
			dto:  &model.CreateThreadDTO{AuthorID: 1, Content: strPtr("hello")},
		},
		{
			name:         "images only",
			dto:          &model.CreateThreadDTO{AuthorID: 1, Images: []string{"https://cdn/img.png"}},
			wantHasMedia: true,
		},
		{
			name:    "empty thread rejected",
			dto:     &model.CreateThreadDTO{AuthorID: 1},
			wantErr: custom_errors.ErrThreadEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db, broadcaster := newTestService(t)
			seedUser(t, db, "alice")

			created, err := svc.Create(context.Background(), tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, broadcaster.Events())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHasMedia, created.HasMedia())
			events := broadcaster.Events()
			require.Len(t, events, 1)
			assert.Equal(t, model.EventThreadCreated, events[0].Type)
		})
	}
}

func TestThreadService_UpdateOwnership(t *testing.T) {
	svc, db, _ := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	created, err := svc.Create(context.Background(), &model.CreateThreadDTO{AuthorID: alice.ID, Content: strPtr("mine")})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), bob.ID, created.ID, &model.UpdateThreadDTO{Content: strPtr("stolen")})
	assert.ErrorIs(t, err, custom_errors.ErrThreadAccessDenied)

	updated, err := svc.Update(context.Background(), alice.ID, created.ID, &model.UpdateThreadDTO{Content: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", *updated.Content)
}

func TestThreadService_DeleteCascades(t *testing.T) {
	svc, db, broadcaster := newTestService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	created, err := svc.Create(context.Background(), &model.CreateThreadDTO{AuthorID: alice.ID, Content: strPtr("doomed")})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, memory.NewLikeRepository(db).Create(ctx, bob.ID, created.ID))
	_, err = memory.NewReplyRepository(db).Create(ctx, &model.Reply{ThreadID: created.ID, AuthorID: bob.ID, Content: "hi"})
	require.NoError(t, err)

	err = svc.Delete(ctx, bob.ID, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrThreadAccessDenied)

	require.NoError(t, svc.Delete(ctx, alice.ID, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrThreadNotFound)

	count, err := memory.NewLikeRepository(db).CountByThread(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	events := broadcaster.Events()
	assert.Equal(t, model.EventThreadDeleted, events[len(events)-1].Type)
}

func TestThreadService_GetFeedWindow(t *testing.T) {
	db := memory.NewDatabase()
	broadcaster := &recordingBroadcaster{}
	svc := NewThreadService(
		memory.NewThreadRepository(db),
		memory.NewUnitOfWork(db),
		broadcaster,
		logger.New("test"),
		noop.NewNoopMetricsProvider(),
		3,
	)
	alice := seedUser(t, db, "alice")

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), &model.CreateThreadDTO{AuthorID: alice.ID, Content: strPtr("post")})
		require.NoError(t, err)
	}

	rows, err := svc.GetFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
