package like_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type Liker interface {
	Like(ctx context.Context, userID, threadID int64) (*model.LikeResult, error)
	Unlike(ctx context.Context, userID, threadID int64) (*model.LikeResult, error)
}

type LikeHandler struct {
	likeService Liker
	log         ports.Logger
}

func NewLikeHandler(likeService Liker, log ports.Logger) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
		log:         log,
	}
}

type likeRequest struct {
	ThreadID int64 `json:"thread_id"`
}

func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ThreadID <= 0 {
		response.BadRequest(w, "thread_id is required")
		return
	}

	result, err := h.likeService.Like(r.Context(), userID, req.ThreadID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "thread liked", model.LikeUpdatePayload{
		ThreadID: result.ThreadID,
		Likes:    result.Likes,
	})
}

func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	threadID, err := strconv.ParseInt(chi.URLParam(r, "thread_id"), 10, 64)
	if err != nil || threadID <= 0 {
		response.BadRequest(w, "invalid thread id")
		return
	}

	result, err := h.likeService.Unlike(r.Context(), userID, threadID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "thread unliked", model.LikeUpdatePayload{
		ThreadID: result.ThreadID,
		Likes:    result.Likes,
	})
}
