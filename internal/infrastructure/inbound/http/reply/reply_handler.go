package reply_handler

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

type ReplyService interface {
	Create(ctx context.Context, dto *model.CreateReplyDTO) (*model.ReplyResult, error)
	ListByThread(ctx context.Context, threadID int64) ([]*model.ReplyDetailed, error)
	Update(ctx context.Context, userID, id int64, dto *model.UpdateReplyDTO) (*model.ReplyResult, error)
	Delete(ctx context.Context, userID, id int64) (*model.ReplyResult, error)
}

type ReplyHandler struct {
	replyService ReplyService
	validate     *validator.Validate
	log          ports.Logger
}

func NewReplyHandler(replyService ReplyService, validate *validator.Validate, log ports.Logger) *ReplyHandler {
	return &ReplyHandler{
		replyService: replyService,
		validate:     validate,
		log:          log,
	}
}

func (h *ReplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var dto model.CreateReplyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	dto.AuthorID = userID

	if err := h.validate.Struct(&dto); err != nil {
		h.log.Debug("Create reply validation failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		response.BadRequest(w, "validation failed")
		return
	}

	result, err := h.replyService.Create(r.Context(), &dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "reply created", result.Reply)
}

func (h *ReplyHandler) ListByThread(w http.ResponseWriter, r *http.Request) {
	threadID, err := strconv.ParseInt(r.URL.Query().Get("thread_id"), 10, 64)
	if err != nil || threadID <= 0 {
		response.BadRequest(w, "thread_id is required")
		return
	}

	replies, err := h.replyService.ListByThread(r.Context(), threadID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "replies fetched", replies)
}

func (h *ReplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "invalid reply id")
		return
	}

	var dto model.UpdateReplyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&dto); err != nil {
		response.BadRequest(w, "validation failed")
		return
	}

	result, err := h.replyService.Update(r.Context(), userID, id, &dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "reply updated", result.Reply)
}

func (h *ReplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "invalid reply id")
		return
	}

	if _, err := h.replyService.Delete(r.Context(), userID, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "reply deleted", nil)
}
