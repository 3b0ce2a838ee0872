package reply_repository

import (
	"context"

	model "circle-backend/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ReplyRepository.go
type Repository interface {
	Create(ctx context.Context, reply *model.Reply) (*model.Reply, error)
	GetByID(ctx context.Context, id int64) (*model.Reply, error)
	ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error)
	Update(ctx context.Context, id int64, update *model.UpdateReplyDTO) (*model.Reply, error)
	Delete(ctx context.Context, id int64) error
	DeleteByThread(ctx context.Context, threadID int64) error
}
