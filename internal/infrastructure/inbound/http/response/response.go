package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"circle-backend/internal/custom_errors"
)

// Body is the envelope every endpoint answers with.
type Body struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Body{
		Code:    code,
		Status:  http.StatusText(code),
		Message: message,
		Data:    data,
	})
}

func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, message, data)
}

func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, message, data)
}

// Error maps domain sentinels onto HTTP status codes. Unknown errors are
// answered as 500 without leaking the cause.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrThreadNotFound),
		errors.Is(err, custom_errors.ErrReplyNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound),
		errors.Is(err, custom_errors.ErrLikeNotFound),
		errors.Is(err, custom_errors.ErrFollowNotFound):
		JSON(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, custom_errors.ErrThreadEmpty),
		errors.Is(err, custom_errors.ErrNoUpdateRows),
		errors.Is(err, custom_errors.ErrSelfFollow),
		errors.Is(err, custom_errors.ErrAlreadyLiked),
		errors.Is(err, custom_errors.ErrAlreadyFollowing),
		errors.Is(err, custom_errors.ErrValidation):
		JSON(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, custom_errors.ErrUsernameExists),
		errors.Is(err, custom_errors.ErrEmailExists):
		JSON(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, custom_errors.ErrThreadAccessDenied),
		errors.Is(err, custom_errors.ErrReplyAccessDenied):
		JSON(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, custom_errors.ErrInvalidCredential),
		errors.Is(err, custom_errors.ErrInvalidToken),
		errors.Is(err, custom_errors.ErrUnauthorized):
		JSON(w, http.StatusUnauthorized, err.Error(), nil)
	default:
		JSON(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSON(w, http.StatusUnauthorized, message, nil)
}
