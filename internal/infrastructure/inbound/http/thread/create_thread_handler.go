package thread_handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type ThreadCreator interface {
	Create(ctx context.Context, dto *model.CreateThreadDTO) (*model.Thread, error)
}

type CreateThreadHandler struct {
	threadService ThreadCreator
	validate      *validator.Validate
	log           ports.Logger
}

func NewCreateThreadHandler(threadService ThreadCreator, validate *validator.Validate, log ports.Logger) *CreateThreadHandler {
	return &CreateThreadHandler{
		threadService: threadService,
		validate:      validate,
		log:           log,
	}
}

func (h *CreateThreadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var dto model.CreateThreadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	dto.AuthorID = userID

	if err := h.validate.Struct(&dto); err != nil {
		h.log.Debug("Create thread validation failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		response.BadRequest(w, "validation failed")
		return
	}

	created, err := h.threadService.Create(r.Context(), &dto)
	if err != nil {
		h.log.Error("Failed to create thread",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		response.Error(w, err)
		return
	}

	response.Created(w, "thread created", created)
}
