package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	ports "circle-backend/internal/domain/ports/output"
	"circle-backend/internal/infrastructure/inbound/http/response"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenVerifier parses a bearer token and returns the user id it carries.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (int64, error)
}

// Auth rejects requests without a valid bearer token and stores the caller's
// user id in the request context.
func Auth(verifier TokenVerifier, log ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Unauthorized(w, "missing bearer token")
				return
			}

			userID, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				log.Debug("Token verification failed", slog.String("error", err.Error()))
				response.Unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's id set by Auth.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID is for tests that exercise handlers without the Auth middleware.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
