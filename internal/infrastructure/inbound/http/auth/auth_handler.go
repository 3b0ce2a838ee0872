package auth_handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type AuthService interface {
	Register(ctx context.Context, dto *model.RegisterDTO) (*model.AuthToken, error)
	Login(ctx context.Context, dto *model.LoginDTO) (*model.AuthToken, error)
}

type AuthHandler struct {
	authService AuthService
	validate    *validator.Validate
	log         ports.Logger
}

func NewAuthHandler(authService AuthService, validate *validator.Validate, log ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
		log:         log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var dto model.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&dto); err != nil {
		h.log.Debug("Register validation failed", slog.String("error", err.Error()))
		response.BadRequest(w, "validation failed")
		return
	}

	token, err := h.authService.Register(r.Context(), &dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "user registered", token)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var dto model.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&dto); err != nil {
		response.BadRequest(w, "validation failed")
		return
	}

	token, err := h.authService.Login(r.Context(), &dto)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "logged in", token)
}
