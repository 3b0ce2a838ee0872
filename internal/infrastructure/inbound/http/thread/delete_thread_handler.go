package thread_handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type ThreadDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

type DeleteThreadHandler struct {
	threadService ThreadDeleter
	log           ports.Logger
}

func NewDeleteThreadHandler(threadService ThreadDeleter, log ports.Logger) *DeleteThreadHandler {
	return &DeleteThreadHandler{
		threadService: threadService,
		log:           log,
	}
}

func (h *DeleteThreadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "invalid thread id")
		return
	}

	if err := h.threadService.Delete(r.Context(), userID, id); err != nil {
		h.log.Debug("Failed to delete thread",
			slog.Int64("thread_id", id),
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		response.Error(w, err)
		return
	}

	response.OK(w, "thread deleted", nil)
}
