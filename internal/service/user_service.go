package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/dailydiet/internal/auth"
	"github.com/mmynk/dailydiet/internal/models"
)

// UserService handles registration, login and profile lookups.
type UserService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *UserService {
	return &UserService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account and returns a token for it.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	s.logger.Info("Register request", "email", email)

	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("User registered successfully", "user_id", user.ID)
	return user, token, nil
}

// Login authenticates a user and returns a token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	s.logger.Info("Login request", "email", email)

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return "", err
	}

	token, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return "", err
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return token, nil
}

// CurrentUser returns the profile of the authenticated user.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.authenticator.LookupUser(ctx, userID)
	if err != nil {
		s.logger.Warn("CurrentUser lookup failed", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}
