package thread_handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type ThreadUpdater interface {
	Update(ctx context.Context, userID, id int64, dto *model.UpdateThreadDTO) (*model.Thread, error)
}

type UpdateThreadHandler struct {
	threadService ThreadUpdater
	validate      *validator.Validate
	log           ports.Logger
}

func NewUpdateThreadHandler(threadService ThreadUpdater, validate *validator.Validate, log ports.Logger) *UpdateThreadHandler {
	return &UpdateThreadHandler{
		threadService: threadService,
		validate:      validate,
		log:           log,
	}
}

func (h *UpdateThreadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var dto model.UpdateThreadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&dto); err != nil {
		h.log.Debug("Update thread validation failed",
			slog.Int64("thread_id", id),
			slog.String("error", err.Error()))
		response.BadRequest(w, "validation failed")
		return
	}

	updated, err := h.threadService.Update(r.Context(), userID, id, &dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "thread updated", updated)
}
