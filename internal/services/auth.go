package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/repository"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Login(ctx context.Context, username, password, secret string, ttl time.Duration) (string, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	users repository.UserRepo
}

func NewAuthService(users repository.UserRepo) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, username, password, secret string, ttl time.Duration) (string, error) {
	log := logger.WithCtx(ctx)

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Warn("login failed: unknown user", zap.String("username", username))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		log.Warn("login failed: bad password", zap.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(secret, u.ID.String(), u.Username, ttl)
	if err != nil {
		log.Error("failed to sign token", zap.Error(err))
		return "", err
	}

	log.Info("login successful", zap.String("username", username))
	return token, nil
}

// EnsureAdmin seeds the dashboard admin on startup when it does not exist
// yet. An empty username or password is a no-op.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.users.Create(ctx, username, string(hash)); err != nil {
		// A concurrent seed already created it.
		if repository.IsUniqueViolation(err) {
			return nil
		}
		return err
	}

	logger.WithCtx(ctx).Info("admin user seeded", zap.String("username", username))
	return nil
}
