package thread_handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type ThreadGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Thread, error)
}

type GetThreadHandler struct {
	threadService ThreadGetter
	log           ports.Logger
}

func NewGetThreadHandler(threadService ThreadGetter, log ports.Logger) *GetThreadHandler {
	return &GetThreadHandler{
		threadService: threadService,
		log:           log,
	}
}

func (h *GetThreadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "invalid thread id")
		return
	}

	thread, err := h.threadService.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "thread fetched", thread)
}
