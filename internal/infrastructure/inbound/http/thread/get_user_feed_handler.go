package thread_handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type UserFeedGetter interface {
	GetUserFeed(ctx context.Context, authorID int64, mediaOnly bool) ([]*model.ThreadFeedRow, error)
}

type GetUserFeedHandler struct {
	threadService UserFeedGetter
	log           ports.Logger
}

func NewGetUserFeedHandler(threadService UserFeedGetter, log ports.Logger) *GetUserFeedHandler {
	return &GetUserFeedHandler{
		threadService: threadService,
		log:           log,
	}
}

func (h *GetUserFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	authorID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || authorID <= 0 {
		response.BadRequest(w, "invalid user id")
		return
	}

	mediaOnly := r.URL.Query().Get("media") == "true"

	rows, err := h.threadService.GetUserFeed(r.Context(), authorID, mediaOnly)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "user feed fetched", model.MapFeed(rows, viewerID))
}
