package reply_service

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ReplyService.go
type Service interface {
	Create(ctx context.Context, dto *model.CreateReplyDTO) (*model.ReplyResult, error)
	ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error)
	Update(ctx context.Context, userID, id int64, dto *model.UpdateReplyDTO) (*model.ReplyResult, error)
	Delete(ctx context.Context, userID, id int64) (*model.ReplyResult, error)
}
