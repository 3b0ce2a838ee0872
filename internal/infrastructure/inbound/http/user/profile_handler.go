package user_handler

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

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*model.Profile, error)
	IsFollowing(ctx context.Context, viewerID, subjectID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, dto *model.UpdateProfileDTO) (*model.User, error)
	Search(ctx context.Context, viewerID int64, query string, limit int) ([]*model.FollowedUser, error)
}

type ProfileHandler struct {
	userService UserService
	validate    *validator.Validate
	log         ports.Logger
}

func NewProfileHandler(userService UserService, validate *validator.Validate, log ports.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

// profileResponse layers the viewer-relative follow flag over the cached
// profile.
type profileResponse struct {
	*model.Profile
	IsFollowing bool `json:"is_following"`
}

func (h *ProfileHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "profile fetched", profileResponse{Profile: profile})
}

func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	subjectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || subjectID <= 0 {
		response.BadRequest(w, "invalid user id")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), subjectID)
	if err != nil {
		response.Error(w, err)
		return
	}

	isFollowing, err := h.userService.IsFollowing(r.Context(), viewerID, subjectID)
	if err != nil {
		h.log.Warn("Failed to resolve follow state for profile",
			slog.Int64("subject_id", subjectID),
			slog.String("error", err.Error()))
	}

	response.OK(w, "profile fetched", profileResponse{Profile: profile, IsFollowing: isFollowing})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var dto model.UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&dto); err != nil {
		h.log.Debug("Update profile validation failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		response.BadRequest(w, "validation failed")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), userID, &dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "profile updated", updated)
}
