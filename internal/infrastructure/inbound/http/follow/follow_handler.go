package follow_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	model "circle-backend/internal/domain/models"
	follow_service "circle-backend/internal/domain/ports/input/follow"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/middleware"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	List(ctx context.Context, userID int64, listType follow_service.ListType) ([]*model.FollowedUser, error)
}

type FollowHandler struct {
	followService FollowService
	log           ports.Logger
}

func NewFollowHandler(followService FollowService, log ports.Logger) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		log:           log,
	}
}

type followRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
		response.BadRequest(w, "user_id is required")
		return
	}

	if err := h.followService.Follow(r.Context(), followerID, req.UserID); err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "followed", nil)
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.BadRequest(w, "invalid user id")
		return
	}

	if err := h.followService.Unfollow(r.Context(), followerID, userID); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "unfollowed", nil)
}

func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	listType := follow_service.ListType(r.URL.Query().Get("type"))
	if listType != follow_service.ListFollowers && listType != follow_service.ListFollowing {
		response.BadRequest(w, "type must be followers or following")
		return
	}

	users, err := h.followService.List(r.Context(), userID, listType)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "follows fetched", users)
}
