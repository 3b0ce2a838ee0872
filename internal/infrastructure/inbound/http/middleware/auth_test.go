package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/custom_errors"
	"circle-backend/internal/infrastructure/logger"
)

type stubVerifier struct {
	userID int64
	err    error
}

func (s stubVerifier) VerifyToken(_ context.Context, _ string) (int64, error) {
	return s.userID, s.err
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   stubVerifier
		wantCode   int
		wantUserID int64
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			verifier:   stubVerifier{userID: 42},
			wantCode:   http.StatusOK,
			wantUserID: 42,
		},
		{
			name:     "missing header",
			header:   "",
			verifier: stubVerifier{userID: 42},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong scheme",
			header:   "Basic abc",
			verifier: stubVerifier{userID: 42},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "rejected token",
			header:   "Bearer bad-token",
			verifier: stubVerifier{err: custom_errors.ErrInvalidToken},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := UserID(r.Context())
				require.True(t, ok)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			})

			handler := Auth(tt.verifier, logger.New("test"))(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func TestUserID_Absent(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)
}
