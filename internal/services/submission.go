package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/repository"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

// publicFormTypes is what the public site is allowed to submit; the
// remaining variants arrive through other channels and are managed from the
// dashboard only.
var publicFormTypes = map[models.FormType]struct{}{
	models.FormJoinTeam:  {},
	models.FormContact:   {},
	models.FormPartner:   {},
	models.FormShareNews: {},
}

type SubmissionService interface {
	Create(ctx context.Context, s *models.FormSubmission, public bool) (*models.FormSubmission, error)
	List(ctx context.Context, p models.ListParams) ([]*models.FormSubmission, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error)
	Update(ctx context.Context, id uuid.UUID, upd *models.FormSubmission) (*models.FormSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error)
}

type submissionService struct {
	repo     repository.SubmissionRepo
	validate *validator.Validator
}

func NewSubmissionService(repo repository.SubmissionRepo, v *validator.Validator) SubmissionService {
	return &submissionService{repo: repo, validate: v}
}

func (s *submissionService) Create(ctx context.Context, sub *models.FormSubmission, public bool) (*models.FormSubmission, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating form submission", zap.String("form_type", string(sub.FormType)))

	if public {
		if _, ok := publicFormTypes[sub.FormType]; !ok {
			log.Warn("submission rejected: form type not accepted publicly", zap.String("form_type", string(sub.FormType)))
			return nil, apperrors.Validation("invalid or missing formType")
		}
	}
	if err := s.validate.ValidateSubmission(sub); err != nil {
		log.Warn("submission rejected", zap.Error(err))
		return nil, asValidationError(err)
	}

	if sub.Status == "" {
		sub.Status = models.SubmissionPending
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		log.Error("failed to create submission", zap.Error(err))
		return nil, err
	}

	log.Info("form submission created",
		zap.String("id", created.ID.String()),
		zap.String("form_type", string(created.FormType)),
	)
	return created, nil
}

func (s *submissionService) List(ctx context.Context, p models.ListParams) ([]*models.FormSubmission, int, error) {
	log := logger.WithCtx(ctx)

	list, total, err := s.repo.List(ctx, p)
	if err != nil {
		log.Error("failed to list submissions", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("submissions listed", zap.Int("count", len(list)), zap.Int("total", total))
	return list, total, nil
}

func (s *submissionService) GetByID(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *submissionService) Update(ctx context.Context, id uuid.UUID, upd *models.FormSubmission) (*models.FormSubmission, error) {
	log := logger.WithCtx(ctx)
	log.Info("updating submission", zap.String("id", id.String()))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The tag is immutable; updates may touch the header and the variant
	// body, but never reshape the union.
	if upd.FormType != "" && upd.FormType != existing.FormType {
		return nil, apperrors.Validation("formType cannot be changed")
	}
	upd.FormType = existing.FormType

	if upd.Status == "" {
		upd.Status = existing.Status
	} else if !models.ValidSubmissionStatus(upd.Status) {
		return nil, apperrors.Validation("invalid status")
	}
	if upd.Name == "" {
		upd.Name = existing.Name
	}
	if upd.Email == "" {
		upd.Email = existing.Email
	}
	if upd.PhoneNumber == "" {
		upd.PhoneNumber = existing.PhoneNumber
	}
	if upd.Variant() == nil {
		// Keep the stored variant when the update only touches the header.
		switch existing.FormType {
		case models.FormJoinTeam:
			upd.JoinTeam = existing.JoinTeam
		case models.FormContact:
			upd.Contact = existing.Contact
		case models.FormPartner:
			upd.Partner = existing.Partner
		case models.FormShareNews:
			upd.ShareNews = existing.ShareNews
		case models.FormJoinGoodProject:
			upd.JoinGoodProject = existing.JoinGoodProject
		case models.FormTestimonial:
			upd.Testimonial = existing.Testimonial
		}
	}
	upd.ID = existing.ID

	if err := s.validate.ValidateSubmission(upd); err != nil {
		return nil, asValidationError(err)
	}

	updated, err := s.repo.Update(ctx, upd)
	if err != nil {
		log.Error("failed to update submission", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("submission updated", zap.String("id", updated.ID.String()), zap.String("status", updated.Status))
	return updated, nil
}

func (s *submissionService) Delete(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error) {
	log := logger.WithCtx(ctx)
	log.Info("deleting submission", zap.String("id", id.String()))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Warn("failed to delete submission", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("submission deleted", zap.String("id", id.String()))
	return deleted, nil
}
