package auth_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"circle-backend/internal/custom_errors"
	model "circle-backend/internal/domain/models"
	output "circle-backend/internal/domain/ports/output"
	user_repository "circle-backend/internal/domain/ports/output/user"
)

type AuthService struct {
	userRepo  user_repository.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	log       output.Logger
}

func NewAuthService(
	userRepo user_repository.Repository,
	jwtSecret string,
	tokenTTL time.Duration,
	log output.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, dto *model.RegisterDTO) (*model.AuthToken, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, &model.User{
		Username:     dto.Username,
		FullName:     dto.FullName,
		Email:        dto.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(created.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username))

	return &model.AuthToken{Token: token, User: created}, nil
}

func (s *AuthService) Login(ctx context.Context, dto *model.LoginDTO) (*model.AuthToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		s.log.Debug("Login rejected", slog.Int64("user_id", user.ID))
		return nil, custom_errors.ErrInvalidCredential
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthToken{Token: token, User: user}, nil
}

func (s *AuthService) VerifyToken(_ context.Context, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, custom_errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, custom_errors.ErrInvalidToken
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, custom_errors.ErrInvalidToken
	}
	return int64(rawID), nil
}

func (s *AuthService) issueToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
