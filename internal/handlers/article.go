package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/metrics"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/services"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils/helpers"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

type patchArticleRequest struct {
	Action string `json:"action"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

// ListArticles godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Param page query int false "1-based page"
// @Param limit query int false "page size"
// @Param all query bool false "fetch all, bypassing pagination"
// @Param search query string false "free-text search"
// @Param status query string false "draft|published|archived"
// @Param category query string false "category id"
// @Param tag query string false "tag"
// @Param featured query bool false "featured flag"
// @Success 200 {object} object
// @Router /api/articles [get]
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	p := listParams(r).Normalize()

	items, total, err := h.articleService.List(r.Context(), p)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to list articles", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Paged(w, http.StatusOK, items, total, p.Page, p.TotalPages(total))
}

// GetArticle godoc
// @Summary Fetch one article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "article slug"
// @Success 200 {object} models.Article
// @Failure 404 {object} object
// @Router /api/articles/{slug} [get]
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	article, err := h.articleService.GetBySlug(r.Context(), slug)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("article lookup failed", zap.String("slug", slug), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// CreateArticle godoc
// @Summary Create an article (admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "article payload"
// @Success 201 {object} models.Article
// @Failure 400 {object} object
// @Router /api/articles [post]
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid JSON in article create", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	article, err := h.articleService.Create(r.Context(), req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to create article", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("article created",
		zap.String("slug", article.Slug), zap.String("status", article.Status))
	helpers.JSON(w, http.StatusCreated, article)
}

// UpdateArticle godoc
// @Summary Update an article (admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id query string true "article id"
// @Param input body models.UpdateArticleRequest true "fields to change"
// @Success 200 {object} models.Article
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /api/articles [put]
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromQuery(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "missing or malformed id")
		return
	}

	var req models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid JSON in article update", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	article, err := h.articleService.Update(r.Context(), id, req)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to update article",
			zap.String("article_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article (admin)
// @Tags admin-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body deleteRequest true "id of the article"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /api/articles [delete]
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromBody(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "missing or malformed id")
		return
	}

	article, err := h.articleService.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to delete article",
			zap.String("article_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("article deleted", zap.String("slug", article.Slug))
	helpers.Message(w, http.StatusOK, "article deleted", article)
}

// PatchArticle godoc
// @Summary Record a view on an article
// @Tags articles
// @Accept json
// @Produce json
// @Param slug path string true "article slug"
// @Param input body patchArticleRequest true "action, must be increment_view"
// @Success 200 {object} models.Article
// @Failure 400 {object} object
// @Router /api/articles/{slug} [patch]
func (h *ArticleHandler) PatchArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req patchArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Action != "increment_view" {
		helpers.Error(w, http.StatusBadRequest, "unsupported action")
		return
	}

	article, err := h.articleService.RecordView(r.Context(), slug)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("failed to record view", zap.String("slug", slug), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	metrics.ArticleViewsTotal.Inc()
	helpers.JSON(w, http.StatusOK, article)
}

// RelatedArticles godoc
// @Summary Related published articles by category or tag overlap
// @Tags articles
// @Produce json
// @Param slug path string true "article slug"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /api/articles/{slug}/related [get]
func (h *ArticleHandler) RelatedArticles(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	related, err := h.articleService.FindRelated(r.Context(), slug, services.RelatedLimit)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("failed to find related articles",
			zap.String("slug", slug), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, related)
}
