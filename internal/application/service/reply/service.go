package reply_service

import (
	"context"
	"fmt"
	"log/slog"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	output "circle-backend/internal/domain/ports/output"
	reply_repository "circle-backend/internal/domain/ports/output/reply"
	thread_repository "circle-backend/internal/domain/ports/output/thread"
	user_repository "circle-backend/internal/domain/ports/output/user"
)

type ReplyService struct {
	replyRepo   reply_repository.Repository
	threadRepo  thread_repository.Repository
	userRepo    user_repository.Repository
	broadcaster output.Broadcaster
	log         output.Logger
	metrics     output.MetricsProvider
}

func NewReplyService(
	replyRepo reply_repository.Repository,
	threadRepo thread_repository.Repository,
	userRepo user_repository.Repository,
	broadcaster output.Broadcaster,
	log output.Logger,
	metrics output.MetricsProvider,
) *ReplyService {
	return &ReplyService{
		replyRepo:   replyRepo,
		threadRepo:  threadRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		log:         log,
		metrics:     metrics,
	}
}

func (s *ReplyService) Create(ctx context.Context, dto *model.CreateReplyDTO) (*model.ReplyResult, error) {
	if dto.Content == "" && len(dto.Images) == 0 {
		return nil, custom_errors.ErrThreadEmpty
	}

	thread, err := s.threadRepo.GetByID(ctx, dto.ThreadID)
	if err != nil {
		return nil, err
	}

	created, err := s.replyRepo.Create(ctx, &model.Reply{
		ThreadID: dto.ThreadID,
		AuthorID: dto.AuthorID,
		Content:  dto.Content,
		Images:   dto.Images,
	})
	if err != nil {
		s.metrics.IncrementReplyOperations("create", false)
		return nil, err
	}
	s.metrics.IncrementReplyOperations("create", true)

	s.broadcaster.Broadcast(model.Event{
		Type:    model.EventNewReply,
		Payload: created,
	})

	if thread.AuthorID != dto.AuthorID {
		if replier, lookupErr := s.userRepo.GetByID(ctx, dto.AuthorID); lookupErr == nil {
			s.broadcaster.Broadcast(model.Event{
				Type:    model.EventNotification,
				Message: fmt.Sprintf("%s replied to your thread", replier.FullName),
				UserID:  thread.AuthorID,
			})
		}
	}

	return &model.ReplyResult{
		Reply:          created,
		ThreadID:       thread.ID,
		ThreadAuthorID: thread.AuthorID,
	}, nil
}

func (s *ReplyService) ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error) {
	if _, err := s.threadRepo.GetByID(ctx, threadID); err != nil {
		return nil, err
	}
	return s.replyRepo.ListByThread(ctx, threadID)
}

func (s *ReplyService) Update(ctx context.Context, userID, id int64, dto *model.UpdateReplyDTO) (*model.ReplyResult, error) {
	reply, err := s.replyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reply.AuthorID != userID {
		s.log.Debug("Reply update denied",
			slog.Int64("reply_id", id),
			slog.Int64("user_id", userID))
		return nil, custom_errors.ErrReplyAccessDenied
	}

	thread, err := s.threadRepo.GetByID(ctx, reply.ThreadID)
	if err != nil {
		return nil, err
	}

	updated, err := s.replyRepo.Update(ctx, id, dto)
	if err != nil {
		s.metrics.IncrementReplyOperations("update", false)
		return nil, err
	}
	s.metrics.IncrementReplyOperations("update", true)

	return &model.ReplyResult{
		Reply:          updated,
		ThreadID:       thread.ID,
		ThreadAuthorID: thread.AuthorID,
	}, nil
}

func (s *ReplyService) Delete(ctx context.Context, userID, id int64) (*model.ReplyResult, error) {
	reply, err := s.replyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reply.AuthorID != userID {
		return nil, custom_errors.ErrReplyAccessDenied
	}

	thread, err := s.threadRepo.GetByID(ctx, reply.ThreadID)
	if err != nil {
		return nil, err
	}

	if err := s.replyRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementReplyOperations("delete", false)
		return nil, err
	}
	s.metrics.IncrementReplyOperations("delete", true)

	return &model.ReplyResult{
		Reply:          reply,
		ThreadID:       thread.ID,
		ThreadAuthorID: thread.AuthorID,
	}, nil
}
