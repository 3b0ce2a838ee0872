package reply_service

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

type replyFixture struct {
	service     *ReplyService
	db          *memory.Database
	broadcaster *recordingBroadcaster
	author      *model.User
	replier     *model.User
	thread      *model.Thread
}

func newReplyFixture(t *testing.T) *replyFixture {
	t.Helper()
	db := memory.NewDatabase()
	broadcaster := &recordingBroadcaster{}
	ctx := context.Background()

	users := memory.NewUserRepository(db)
	author, err := users.Create(ctx, &model.User{Username: "alice", FullName: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	replier, err := users.Create(ctx, &model.User{Username: "bob", FullName: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	content := "parent"
	thread, err := memory.NewThreadRepository(db).Create(ctx, &model.Thread{AuthorID: author.ID, Content: &content})
	require.NoError(t, err)

	return &replyFixture{
		service: NewReplyService(
			memory.NewReplyRepository(db),
			memory.NewThreadRepository(db),
			users,
			broadcaster,
			logger.New("test"),
			noop.NewNoopMetricsProvider(),
		),
		db:          db,
		broadcaster: broadcaster,
		author:      author,
		replier:     replier,
		thread:      thread,
	}
}

func TestReplyService_Create(t *testing.T) {
	f := newReplyFixture(t)

	result, err := f.service.Create(context.Background(), &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: f.thread.ID,
		Content:  "nice one",
	})
	require.NoError(t, err)
	assert.Equal(t, f.thread.ID, result.ThreadID)
	assert.Equal(t, f.author.ID, result.ThreadAuthorID)
	assert.Equal(t, "nice one", result.Reply.Content)

	events := f.broadcaster.Events()
	require.Len(t, events, 2)
	assert.Equal(t, model.EventNewReply, events[0].Type)
	assert.Equal(t, model.EventNotification, events[1].Type)
	assert.Equal(t, f.author.ID, events[1].UserID)
}

func TestReplyService_CreateValidation(t *testing.T) {
	f := newReplyFixture(t)

	_, err := f.service.Create(context.Background(), &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: f.thread.ID,
	})
	assert.ErrorIs(t, err, custom_errors.ErrThreadEmpty)

	_, err = f.service.Create(context.Background(), &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: 9999,
		Content:  "orphan",
	})
	assert.ErrorIs(t, err, custom_errors.ErrThreadNotFound)
}

func TestReplyService_SelfReplySkipsNotification(t *testing.T) {
	f := newReplyFixture(t)

	_, err := f.service.Create(context.Background(), &model.CreateReplyDTO{
		AuthorID: f.author.ID,
		ThreadID: f.thread.ID,
		Content:  "adding on",
	})
	require.NoError(t, err)

	events := f.broadcaster.Events()
	require.Len(t, events, 1)
	assert.Equal(t, model.EventNewReply, events[0].Type)
}

func TestReplyService_UpdateOwnership(t *testing.T) {
	f := newReplyFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: f.thread.ID,
		Content:  "original",
	})
	require.NoError(t, err)

	_, err = f.service.Update(ctx, f.author.ID, created.Reply.ID, &model.UpdateReplyDTO{Content: strPtr("hijack")})
	assert.ErrorIs(t, err, custom_errors.ErrReplyAccessDenied)

	updated, err := f.service.Update(ctx, f.replier.ID, created.Reply.ID, &model.UpdateReplyDTO{Content: strPtr("fixed")})
	require.NoError(t, err)
	assert.Equal(t, "fixed", updated.Reply.Content)
}

func TestReplyService_Delete(t *testing.T) {
	f := newReplyFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, &model.CreateReplyDTO{
		AuthorID: f.replier.ID,
		ThreadID: f.thread.ID,
		Content:  "fleeting",
	})
	require.NoError(t, err)

	_, err = f.service.Delete(ctx, f.author.ID, created.Reply.ID)
	assert.ErrorIs(t, err, custom_errors.ErrReplyAccessDenied)

	result, err := f.service.Delete(ctx, f.replier.ID, created.Reply.ID)
	require.NoError(t, err)
	assert.Equal(t, f.author.ID, result.ThreadAuthorID)

	replies, err := f.service.ListByThread(ctx, f.thread.ID)
	require.NoError(t, err)
	assert.Empty(t, replies)
}

func strPtr(s string) *string { return &s }
