package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/content"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/repository"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/slug"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

// RelatedLimit is the default size of a related-articles result.
const RelatedLimit = 3

type ArticleService interface {
	Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	List(ctx context.Context, p models.ListParams) ([]*models.Article, int, error)
	GetBySlug(ctx context.Context, slugVal string) (*models.Article, error)
	Update(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Article, error)
	RecordView(ctx context.Context, slugVal string) (*models.Article, error)
	FindRelated(ctx context.Context, slugVal string, limit int) ([]*models.Article, error)
}

type articleService struct {
	repo     repository.ArticleRepo
	catRepo  repository.CategoryRepo
	validate *validator.Validator
	policy   *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo, catRepo repository.CategoryRepo, v *validator.Validator) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, catRepo: catRepo, validate: v, policy: p}
}

func (s *articleService) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating article",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Int("blocks_count", len(req.Blocks)),
		zap.Int("tags_count", len(req.Tags)),
	)

	if err := s.validate.ValidateCreateArticle(&req); err != nil {
		log.Warn("article create rejected", zap.Error(err))
		return nil, asValidationError(err)
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	catRefs, err := parseCategoryRefs(req.Categories)
	if err != nil {
		log.Warn("article create rejected: bad category id", zap.Error(err))
		return nil, err
	}

	a := &models.Article{
		Title:           strings.TrimSpace(req.Title),
		TitleAr:         strings.TrimSpace(req.TitleAr),
		Content:         s.policy.Sanitize(req.Content),
		Blocks:          s.sanitizeBlocks(req.Blocks),
		Excerpt:         req.Excerpt,
		ExcerptAr:       req.ExcerptAr,
		FeaturedImage:   req.FeaturedImage,
		TikTokVideoURL:  req.TikTokVideoURL,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Status:          status,
		Tags:            normalizeTags(req.Tags),
		Categories:      catRefs,
		Featured:        req.Featured,
	}

	slugVal, err := s.resolveSlug(ctx, req.Slug, a.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}
	a.Slug = slugVal

	if a.Excerpt == "" {
		a.Excerpt = content.DeriveExcerpt(a.Content, a.Blocks)
	}
	if strings.TrimSpace(a.Content) == "" && len(a.Blocks) > 0 {
		a.Content = content.ContentFromBlocks(a.Blocks)
	}
	if a.Status == models.StatusPublished {
		now := time.Now()
		a.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			log.Warn("article slug collided at insert", zap.String("slug", a.Slug))
			return nil, apperrors.Conflict("slug already exists")
		}
		log.Error("failed to create article", zap.Error(err))
		return nil, err
	}

	log.Info("article created",
		zap.String("id", created.ID.String()),
		zap.String("slug", created.Slug),
		zap.String("status", created.Status),
	)
	return created, nil
}

func (s *articleService) List(ctx context.Context, p models.ListParams) ([]*models.Article, int, error) {
	log := logger.WithCtx(ctx)
	log.Debug("listing articles",
		zap.Int("page", p.Page),
		zap.Bool("all", p.All),
		zap.String("search", p.Search),
		zap.String("status", p.Status),
	)

	list, total, err := s.repo.List(ctx, p)
	if err != nil {
		log.Error("failed to list articles", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("articles listed", zap.Int("count", len(list)), zap.Int("total", total))
	return list, total, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slugVal string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetBySlug(ctx, slugVal)
	if err != nil {
		log.Warn("article not found", zap.String("slug", slugVal), zap.Error(err))
		return nil, err
	}

	s.expandCategories(ctx, a)
	return a, nil
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("updating article", zap.String("id", id.String()))

	if err := s.validate.ValidateUpdateArticle(&req); err != nil {
		log.Warn("article update rejected", zap.Error(err))
		return nil, asValidationError(err)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("article not found for update", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	if req.Slug != nil && *req.Slug != a.Slug {
		// An explicit slug change conflicts hard instead of self-healing
		// with a suffix.
		exists, err := s.repo.SlugExists(ctx, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			log.Warn("article slug conflict on update", zap.String("slug", *req.Slug))
			return nil, apperrors.Conflict("slug already exists")
		}
		a.Slug = *req.Slug
	}

	if req.Title != nil {
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.TitleAr != nil {
		a.TitleAr = strings.TrimSpace(*req.TitleAr)
	}
	if req.Content != nil {
		a.Content = s.policy.Sanitize(*req.Content)
	}
	if req.Blocks != nil {
		a.Blocks = s.sanitizeBlocks(*req.Blocks)
	}
	if req.Excerpt != nil {
		a.Excerpt = *req.Excerpt
	}
	if req.ExcerptAr != nil {
		a.ExcerptAr = *req.ExcerptAr
	}
	if req.FeaturedImage != nil {
		a.FeaturedImage = *req.FeaturedImage
	}
	if req.TikTokVideoURL != nil {
		a.TikTokVideoURL = *req.TikTokVideoURL
	}
	if req.MetaTitle != nil {
		a.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		a.MetaDescription = *req.MetaDescription
	}
	if req.Tags != nil {
		a.Tags = normalizeTags(*req.Tags)
	}
	if req.Categories != nil {
		refs, err := parseCategoryRefs(*req.Categories)
		if err != nil {
			return nil, err
		}
		a.Categories = refs
	}
	if req.Featured != nil {
		a.Featured = *req.Featured
	}

	if req.Status != nil {
		// First transition into published stamps publishedAt; it is never
		// touched again, including archived -> published round trips.
		if *req.Status == models.StatusPublished && a.PublishedAt == nil {
			now := time.Now()
			a.PublishedAt = &now
		}
		a.Status = *req.Status
	}

	if a.Excerpt == "" && (strings.TrimSpace(a.Content) != "" || len(a.Blocks) > 0) {
		a.Excerpt = content.DeriveExcerpt(a.Content, a.Blocks)
	}
	if strings.TrimSpace(a.Content) == "" && len(a.Blocks) > 0 {
		a.Content = content.ContentFromBlocks(a.Blocks)
	}

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("slug already exists")
		}
		log.Error("failed to update article", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("article updated", zap.String("id", updated.ID.String()), zap.String("status", updated.Status))
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("deleting article", zap.String("id", id.String()))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Warn("failed to delete article", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("article deleted", zap.String("id", id.String()), zap.String("slug", deleted.Slug))
	return deleted, nil
}

func (s *articleService) RecordView(ctx context.Context, slugVal string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.IncrementViewCount(ctx, slugVal)
	if err != nil {
		log.Warn("failed to record view", zap.String("slug", slugVal), zap.Error(err))
		return nil, err
	}

	log.Debug("view recorded", zap.String("slug", slugVal), zap.Int("view_count", a.ViewCount))
	return a, nil
}

func (s *articleService) FindRelated(ctx context.Context, slugVal string, limit int) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	if limit <= 0 {
		limit = RelatedLimit
	}

	a, err := s.repo.GetBySlug(ctx, slugVal)
	if err != nil {
		return nil, err
	}

	// Nothing to overlap on: related is empty by construction, skip the
	// pool fetch entirely.
	if len(a.Categories) == 0 && len(a.Tags) == 0 {
		return []*models.Article{}, nil
	}

	pool, _, err := s.repo.List(ctx, models.ListParams{All: true, Status: models.StatusPublished})
	if err != nil {
		log.Error("failed to fetch related pool", zap.Error(err))
		return nil, err
	}

	related := relatedTo(a, pool, limit)
	log.Debug("related articles resolved", zap.String("slug", slugVal), zap.Int("count", len(related)))
	return related, nil
}

// relatedTo keeps pool entries sharing a category id or a tag with a,
// excluding a itself, truncated to limit in pool order. No scoring.
func relatedTo(a *models.Article, pool []*models.Article, limit int) []*models.Article {
	catSet := make(map[uuid.UUID]struct{}, len(a.Categories))
	for _, id := range models.CategoryIDs(a.Categories) {
		catSet[id] = struct{}{}
	}
	tagSet := make(map[string]struct{}, len(a.Tags))
	for _, t := range a.Tags {
		tagSet[t] = struct{}{}
	}

	related := []*models.Article{}
	for _, cand := range pool {
		if cand.ID == a.ID {
			continue
		}
		if !overlaps(cand, catSet, tagSet) {
			continue
		}
		related = append(related, cand)
		if len(related) == limit {
			break
		}
	}
	return related
}

func overlaps(cand *models.Article, catSet map[uuid.UUID]struct{}, tagSet map[string]struct{}) bool {
	for _, id := range models.CategoryIDs(cand.Categories) {
		if _, ok := catSet[id]; ok {
			return true
		}
	}
	for _, t := range cand.Tags {
		if _, ok := tagSet[t]; ok {
			return true
		}
	}
	return false
}

// resolveSlug generates a slug when none was supplied, rejects titles that
// strip down to nothing, and self-heals create-time collisions with a
// millisecond-epoch suffix. Best effort only: the unique index backstops the
// race between check and insert.
func (s *articleService) resolveSlug(ctx context.Context, explicit, title string, excludeID uuid.UUID) (string, error) {
	slugVal := explicit
	if slugVal == "" {
		slugVal = slug.Generate(title)
	}
	if slugVal == "" {
		return "", apperrors.Validation("title produces an empty slug")
	}

	exists, err := s.repo.SlugExists(ctx, slugVal, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		slugVal = fmt.Sprintf("%s-%d", slugVal, time.Now().UnixMilli())
	}
	return slugVal, nil
}

func (s *articleService) sanitizeBlocks(blocks []models.ContentBlock) []models.ContentBlock {
	out := make([]models.ContentBlock, len(blocks))
	for i, b := range blocks {
		if b.TextHTML != "" {
			b.TextHTML = s.policy.Sanitize(b.TextHTML)
		}
		if b.ArabicContent != "" {
			b.ArabicContent = s.policy.Sanitize(b.ArabicContent)
		}
		if b.Layout == "" && (b.Type == models.BlockImageText) {
			b.Layout = models.LayoutImgBlock
		}
		out[i] = b
	}
	return out
}

func (s *articleService) expandCategories(ctx context.Context, a *models.Article) {
	ids := models.CategoryIDs(a.Categories)
	if len(ids) == 0 {
		return
	}

	cats, err := s.catRepo.GetByIDs(ctx, ids)
	if err != nil {
		// Expansion is best effort; refs stay as bare ids on failure.
		logger.WithCtx(ctx).Warn("failed to expand category refs", zap.Error(err))
		return
	}

	byID := make(map[uuid.UUID]*models.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	for i, ref := range a.Categories {
		if c, ok := byID[ref.ID]; ok {
			a.Categories[i].Expanded = c
		}
	}
}

func parseCategoryRefs(ids []string) ([]models.CategoryRef, error) {
	refs := make([]models.CategoryRef, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.Validation("invalid category id: %s", raw)
		}
		refs = append(refs, models.CategoryRef{ID: id})
	}
	return refs, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
