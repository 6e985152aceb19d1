package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/repository"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/slug"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

type CategoryService interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	List(ctx context.Context, p models.ListParams) ([]*models.Category, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type categoryService struct {
	repo     repository.CategoryRepo
	validate *validator.Validator
}

func NewCategoryService(repo repository.CategoryRepo, v *validator.Validator) CategoryService {
	return &categoryService{repo: repo, validate: v}
}

func (s *categoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating category", zap.String("title_en", req.TitleEn))

	if err := s.validate.ValidateCreateCategory(&req); err != nil {
		log.Warn("category create rejected", zap.Error(err))
		return nil, asValidationError(err)
	}

	slugVal := req.Slug
	if slugVal == "" {
		slugVal = slug.Generate(req.TitleEn)
	}
	if slugVal == "" {
		return nil, apperrors.Validation("title produces an empty slug")
	}

	exists, err := s.repo.SlugExists(ctx, slugVal, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		slugVal = fmt.Sprintf("%s-%d", slugVal, time.Now().UnixMilli())
	}

	status := req.Status
	if status == "" {
		status = models.CategoryStatusActive
	}

	c := &models.Category{
		TitleEn: strings.TrimSpace(req.TitleEn),
		TitleAr: strings.TrimSpace(req.TitleAr),
		Slug:    slugVal,
		Status:  status,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			log.Warn("category slug collided at insert", zap.String("slug", slugVal))
			return nil, apperrors.Conflict("slug already exists")
		}
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	log.Info("category created", zap.String("id", created.ID.String()), zap.String("slug", created.Slug))
	return created, nil
}

func (s *categoryService) List(ctx context.Context, p models.ListParams) ([]*models.Category, int, error) {
	log := logger.WithCtx(ctx)

	list, total, err := s.repo.List(ctx, p)
	if err != nil {
		log.Error("failed to list categories", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("categories listed", zap.Int("count", len(list)), zap.Int("total", total))
	return list, total, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("updating category", zap.String("id", id.String()))

	if err := s.validate.ValidateUpdateCategory(&req); err != nil {
		log.Warn("category update rejected", zap.Error(err))
		return nil, asValidationError(err)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != c.Slug {
		exists, err := s.repo.SlugExists(ctx, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			log.Warn("category slug conflict on update", zap.String("slug", *req.Slug))
			return nil, apperrors.Conflict("slug already exists")
		}
		c.Slug = *req.Slug
	}
	if req.TitleEn != nil {
		c.TitleEn = strings.TrimSpace(*req.TitleEn)
	}
	if req.TitleAr != nil {
		c.TitleAr = strings.TrimSpace(*req.TitleAr)
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("slug already exists")
		}
		log.Error("failed to update category", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("category updated", zap.String("id", updated.ID.String()))
	return updated, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("deleting category", zap.String("id", id.String()))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Warn("failed to delete category", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("category deleted", zap.String("id", id.String()), zap.String("slug", deleted.Slug))
	return deleted, nil
}
