package thread_service

import (
	"context"
	"log/slog"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	output "circle-backend/internal/domain/ports/output"
	thread_repository "circle-backend/internal/domain/ports/output/thread"
	"circle-backend/internal/infrastructure/outbound/repository/postgres"
)

type ThreadService struct {
	threadRepo  thread_repository.Repository
	uow         postgres.UnitOfWork
	broadcaster output.Broadcaster
	log         output.Logger
	metrics     output.MetricsProvider
	feedWindow  int
}

func NewThreadService(
	threadRepo thread_repository.Repository,
	uow postgres.UnitOfWork,
	broadcaster output.Broadcaster,
	log output.Logger,
	metrics output.MetricsProvider,
	feedWindow int,
) *ThreadService {
	return &ThreadService{
		threadRepo:  threadRepo,
		uow:         uow,
		broadcaster: broadcaster,
		log:         log,
		metrics:     metrics,
		feedWindow:  feedWindow,
	}
}

func (s *ThreadService) Create(ctx context.Context, dto *model.CreateThreadDTO) (*model.Thread, error) {
	if (dto.Content == nil || *dto.Content == "") && len(dto.Images) == 0 {
		return nil, custom_errors.ErrThreadEmpty
	}

	created, err := s.threadRepo.Create(ctx, &model.Thread{
		AuthorID: dto.AuthorID,
		Content:  dto.Content,
		Images:   dto.Images,
	})
	if err != nil {
		s.log.Error("Failed to create thread", slog.String("error", err.Error()))
		s.metrics.IncrementThreadOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementThreadOperations("create", true)
	s.broadcaster.Broadcast(model.Event{
		Type:    model.EventThreadCreated,
		Payload: created,
	})

	return created, nil
}

func (s *ThreadService) GetByID(ctx context.Context, id int64) (*model.Thread, error) {
	return s.threadRepo.GetByID(ctx, id)
}

func (s *ThreadService) GetFeed(ctx context.Context) ([]*model.ThreadFeedRow, error) {
	rows, err := s.threadRepo.FeedRows(ctx, s.feedWindow)
	if err != nil {
		s.log.Error("Failed to query feed rows", slog.String("error", err.Error()))
		return nil, err
	}
	return rows, nil
}

func (s *ThreadService) GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error) {
	rows, err := s.threadRepo.UserFeedRows(ctx, authorID, mediaOnly)
	if err != nil {
		s.log.Error("Failed to query user feed rows",
			slog.Int64("author_id", authorID),
			slog.Bool("media_only", mediaOnly),
			slog.String("error", err.Error()))
		return nil, err
	}
	return rows, nil
}

func (s *ThreadService) Update(ctx context.Context, userID, id int64, dto *model.UpdateThreadDTO) (*model.Thread, error) {
	thread, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if thread.AuthorID != userID {
		s.log.Debug("Thread update denied",
			slog.Int64("thread_id", id),
			slog.Int64("user_id", userID),
			slog.Int64("author_id", thread.AuthorID))
		return nil, custom_errors.ErrThreadAccessDenied
	}

	updated, err := s.threadRepo.Update(ctx, id, dto)
	if err != nil {
		s.metrics.IncrementThreadOperations("update", false)
		return nil, err
	}

	s.metrics.IncrementThreadOperations("update", true)
	s.broadcaster.Broadcast(model.Event{
		Type:    model.EventThreadUpdated,
		Payload: updated,
	})

	return updated, nil
}

func (s *ThreadService) Delete(ctx context.Context, userID, id int64) error {
	thread, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if thread.AuthorID != userID {
		return custom_errors.ErrThreadAccessDenied
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Transaction rollback after failed delete", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	if err := tx.LikeRepository().DeleteByThread(ctx, id); err != nil {
		return err
	}
	if err := tx.ReplyRepository().DeleteByThread(ctx, id); err != nil {
		return err
	}
	if err := tx.ThreadRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit thread deletion", slog.Int64("thread_id", id), slog.String("error", err.Error()))
		s.metrics.IncrementThreadOperations("delete", false)
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementThreadOperations("delete", true)
	s.broadcaster.Broadcast(model.Event{
		Type:    model.EventThreadDeleted,
		Payload: map[string]int64{"threadId": id},
	})

	return nil
}
