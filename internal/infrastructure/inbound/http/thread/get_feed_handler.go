package thread_handler

import (
	"context"
	"net/http"
	"strconv"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

const defaultFeedLimit = 25

type FeedGetter interface {
	GetFeed(ctx context.Context) ([]*model.ThreadFeedRow, error)
}

type GetFeedHandler struct {
	threadService FeedGetter
	log           ports.Logger
}

func NewGetFeedHandler(threadService FeedGetter, log ports.Logger) *GetFeedHandler {
	return &GetFeedHandler{
		threadService: threadService,
		log:           log,
	}
}

func (h *GetFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	limit := defaultFeedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	rows, err := h.threadService.GetFeed(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	// The service returns the full cached window; the page is cut here.
	if limit < len(rows) {
		rows = rows[:limit]
	}

	response.OK(w, "feed fetched", model.MapFeed(rows, viewerID))
}
