package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/services"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils/helpers"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories godoc
// @Summary List article categories
// @Tags categories
// @Produce json
// @Param page query int false "1-based page"
// @Param all query bool false "fetch all, bypassing pagination"
// @Param search query string false "free-text search over titles and slug"
// @Param status query string false "active|inactive"
// @Success 200 {object} object
// @Router /api/article-categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	p := listParams(r).Normalize()

	items, total, err := h.categoryService.List(r.Context(), p)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to list categories", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Paged(w, http.StatusOK, items, total, p.Page, p.TotalPages(total))
}

// GetCategory godoc
// @Summary Fetch one category by id
// @Tags categories
// @Produce json
// @Param id path string true "category id"
// @Success 200 {object} models.Category
// @Failure 404 {object} object
// @Router /api/article-categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "malformed id")
		return
	}

	category, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("category lookup failed",
			zap.String("category_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category (admin)
// @Tags admin-categories
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateCategoryRequest true "category payload"
// @Success 201 {object} models.Category
// @Failure 400 {object} object
// @Router /api/article-categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid JSON in category create", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	category, err := h.categoryService.Create(r.Context(), req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to create category", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("category created", zap.String("slug", category.Slug))
	helpers.JSON(w, http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update a category (admin)
// @Tags admin-categories
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id query string true "category id"
// @Param input body models.UpdateCategoryRequest true "fields to change"
// @Success 200 {object} models.Category
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /api/article-categories [put]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromQuery(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "missing or malformed id")
		return
	}

	var req models.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid JSON in category update", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to update category",
			zap.String("category_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category (admin)
// @Tags admin-categories
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body deleteRequest true "id of the category"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /api/article-categories [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromBody(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "missing or malformed id")
		return
	}

	category, err := h.categoryService.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to delete category",
			zap.String("category_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Message(w, http.StatusOK, "category deleted", category)
}
