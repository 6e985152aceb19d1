package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/repository"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

type SubscriberService interface {
	Subscribe(ctx context.Context, email string) (*models.Subscriber, error)
	List(ctx context.Context, p models.ListParams) ([]*models.Subscriber, int, error)
	Update(ctx context.Context, id uuid.UUID, email string) (*models.Subscriber, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Subscriber, error)
	MonthlyStats(ctx context.Context) ([]models.SubscriberStat, error)
}

type subscriberService struct {
	repo     repository.SubscriberRepo
	validate *validator.Validator
}

func NewSubscriberService(repo repository.SubscriberRepo, v *validator.Validator) SubscriberService {
	return &subscriberService{repo: repo, validate: v}
}

// NormalizeEmail lowercases and trims; uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *subscriberService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	log := logger.WithCtx(ctx)

	email = NormalizeEmail(email)
	if err := s.validate.ValidateEmail(email); err != nil {
		log.Warn("newsletter signup rejected", zap.Error(err))
		return nil, asValidationError(err)
	}

	sub, err := s.repo.Create(ctx, email)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			log.Warn("newsletter signup duplicate", zap.String("email", email))
			return nil, apperrors.Conflict("the email %s already exists", email)
		}
		log.Error("failed to create subscriber", zap.Error(err))
		return nil, err
	}

	log.Info("newsletter subscriber created", zap.String("id", sub.ID.String()))
	return sub, nil
}

func (s *subscriberService) List(ctx context.Context, p models.ListParams) ([]*models.Subscriber, int, error) {
	log := logger.WithCtx(ctx)

	list, total, err := s.repo.List(ctx, p)
	if err != nil {
		log.Error("failed to list subscribers", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("subscribers listed", zap.Int("count", len(list)), zap.Int("total", total))
	return list, total, nil
}

func (s *subscriberService) Update(ctx context.Context, id uuid.UUID, email string) (*models.Subscriber, error) {
	log := logger.WithCtx(ctx)

	email = NormalizeEmail(email)
	if err := s.validate.ValidateEmail(email); err != nil {
		return nil, asValidationError(err)
	}

	sub, err := s.repo.Update(ctx, id, email)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("the email %s already exists", email)
		}
		log.Warn("failed to update subscriber", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (s *subscriberService) Delete(ctx context.Context, id uuid.UUID) (*models.Subscriber, error) {
	log := logger.WithCtx(ctx)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Warn("failed to delete subscriber", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("subscriber deleted", zap.String("id", id.String()))
	return deleted, nil
}

func (s *subscriberService) MonthlyStats(ctx context.Context) ([]models.SubscriberStat, error) {
	return s.repo.MonthlyStats(ctx)
}
