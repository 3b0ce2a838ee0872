package like_service

import (
	"context"
	"fmt"
	"log/slog"

	model "circle-backend/internal/domain/models"
	output "circle-backend/internal/domain/ports/output"
	like_repository "circle-backend/internal/domain/ports/output/like"
	thread_repository "circle-backend/internal/domain/ports/output/thread"
	user_repository "circle-backend/internal/domain/ports/output/user"
)

type LikeService struct {
	likeRepo    like_repository.Repository
	threadRepo  thread_repository.Repository
	userRepo    user_repository.Repository
	broadcaster output.Broadcaster
	log         output.Logger
	metrics     output.MetricsProvider
}

func NewLikeService(
	likeRepo like_repository.Repository,
	threadRepo thread_repository.Repository,
	userRepo user_repository.Repository,
	broadcaster output.Broadcaster,
	log output.Logger,
	metrics output.MetricsProvider,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		threadRepo:  threadRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		log:         log,
		metrics:     metrics,
	}
}

func (s *LikeService) Like(ctx context.Context, userID, threadID int64) (*model.LikeResult, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if err := s.likeRepo.Create(ctx, userID, threadID); err != nil {
		s.metrics.IncrementLikeOperations("like", false)
		return nil, err
	}

	count, err := s.likeRepo.CountByThread(ctx, threadID)
	if err != nil {
		s.log.Warn("Failed to count likes after like",
			slog.Int64("thread_id", threadID),
			slog.String("error", err.Error()))
	}

	s.metrics.IncrementLikeOperations("like", true)
	s.broadcaster.Broadcast(model.Event{
		Type:    model.EventLikeUpdate,
		Payload: model.LikeUpdatePayload{ThreadID: threadID, Likes: count},
	})

	if thread.AuthorID != userID {
		if liker, lookupErr := s.userRepo.GetByID(ctx, userID); lookupErr == nil {
			s.broadcaster.Broadcast(model.Event{
				Type:    model.EventNotification,
				Message: fmt.Sprintf("%s liked your thread", liker.FullName),
				UserID:  thread.AuthorID,
			})
		}
	}

	return &model.LikeResult{
		ThreadID:       threadID,
		ThreadAuthorID: thread.AuthorID,
		Likes:          count,
	}, nil
}

func (s *LikeService) Unlike(ctx context.Context, userID, threadID int64) (*model.LikeResult, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if err := s.likeRepo.Delete(ctx, userID, threadID); err != nil {
		s.metrics.IncrementLikeOperations("unlike", false)
		return nil, err
	}

	count, err := s.likeRepo.CountByThread(ctx, threadID)
	if err != nil {
		s.log.Warn("Failed to count likes after unlike",
			slog.Int64("thread_id", threadID),
			slog.String("error", err.Error()))
	}

	s.metrics.IncrementLikeOperations("unlike", true)
	s.broadcaster.Broadcast(model.Event{
		Type:    model.EventLikeUpdate,
		Payload: model.LikeUpdatePayload{ThreadID: threadID, Likes: count},
	})

	return &model.LikeResult{
		ThreadID:       threadID,
		ThreadAuthorID: thread.AuthorID,
		Likes:          count,
	}, nil
}
