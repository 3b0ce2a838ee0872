package auth_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	"circle-backend/internal/infrastructure/logger"
	"circle-backend/internal/infrastructure/outbound/repository/memory"
)

func newAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(
		memory.NewUserRepository(memory.NewDatabase()),
		"test-secret",
		ttl,
		logger.New("test"),
	)
}

func register(t *testing.T, svc *AuthService) *model.AuthToken {
	t.Helper()
	token, err := svc.Register(context.Background(), &model.RegisterDTO{
		Username: "alice",
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	return token
}

func TestAuthService_RegisterAndVerify(t *testing.T) {
	svc := newAuthService(time.Hour)
	token := register(t, svc)

	require.NotEmpty(t, token.Token)
	assert.Equal(t, "alice", token.User.Username)
	assert.NotEqual(t, "hunter2hunter2", token.User.PasswordHash)

	userID, err := svc.VerifyToken(context.Background(), token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.User.ID, userID)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(time.Hour)
	register(t, svc)
	ctx := context.Background()

	token, err := svc.Login(ctx, &model.LoginDTO{Email: "alice@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	_, err = svc.Login(ctx, &model.LoginDTO{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCredential)

	// Unknown email answers the same as a wrong password.
	_, err = svc.Login(ctx, &model.LoginDTO{Email: "nobody@example.com", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCredential)
}

func TestAuthService_DuplicateRegistration(t *testing.T) {
	svc := newAuthService(time.Hour)
	register(t, svc)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterDTO{
		Username: "alice2",
		FullName: "Alice Again",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, custom_errors.ErrEmailExists)

	_, err = svc.Register(ctx, &model.RegisterDTO{
		Username: "alice",
		FullName: "Alice Again",
		Email:    "other@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, custom_errors.ErrUsernameExists)
}

func TestAuthService_TokenValidation(t *testing.T) {
	svc := newAuthService(time.Hour)
	token := register(t, svc)
	ctx := context.Background()

	_, err := svc.VerifyToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidToken)

	// Signed with a different secret.
	other := NewAuthService(
		memory.NewUserRepository(memory.NewDatabase()),
		"another-secret",
		time.Hour,
		logger.New("test"),
	)
	_, err = other.VerifyToken(ctx, token.Token)
	assert.ErrorIs(t, err, custom_errors.ErrInvalidToken)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	svc := newAuthService(-time.Minute)
	token := register(t, svc)

	_, err := svc.VerifyToken(context.Background(), token.Token)
	assert.ErrorIs(t, err, custom_errors.ErrInvalidToken)
}
