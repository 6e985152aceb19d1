package services

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

// In-memory stand-in for the article store, insertion-ordered like the
// created_at DESC listing would be for monotonically created fixtures.
type mockArticleRepo struct {
	articles []*models.Article
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	cp := *a
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.articles = append([]*models.Article{&cp}, m.articles...)
	return &cp, nil
}

func (m *mockArticleRepo) List(_ context.Context, p models.ListParams) ([]*models.Article, int, error) {
	matched := []*models.Article{}
	for _, a := range m.articles {
		if p.Status != "" && a.Status != p.Status {
			continue
		}
		matched = append(matched, a)
	}
	if p.All {
		return matched, len(matched), nil
	}
	start := p.Offset()
	if start > len(matched) {
		return []*models.Article{}, len(matched), nil
	}
	end := start + p.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched), nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) GetBySlug(_ context.Context, slug string) (*models.Article, error) {
	for _, a := range m.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, a := range m.articles {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockArticleRepo) Update(_ context.Context, a *models.Article) (*models.Article, error) {
	for i, existing := range m.articles {
		if existing.ID == a.ID {
			cp := *a
			cp.UpdatedAt = time.Now()
			m.articles[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) Delete(_ context.Context, id uuid.UUID) (*models.Article, error) {
	for i, a := range m.articles {
		if a.ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockArticleRepo) IncrementViewCount(_ context.Context, slug string) (*models.Article, error) {
	for _, a := range m.articles {
		if a.Slug == slug {
			a.ViewCount++
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type mockCategoryRepo struct {
	categories []*models.Category
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	cp := *c
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.categories = append([]*models.Category{&cp}, m.categories...)
	return &cp, nil
}

func (m *mockCategoryRepo) List(_ context.Context, p models.ListParams) ([]*models.Category, int, error) {
	return m.categories, len(m.categories), nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCategoryRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*models.Category, error) {
	out := []*models.Category{}
	for _, id := range ids {
		for _, c := range m.categories {
			if c.ID == id {
				cp := *c
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (m *mockCategoryRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, c := range m.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, c *models.Category) (*models.Category, error) {
	for i, existing := range m.categories {
		if existing.ID == c.ID {
			cp := *c
			m.categories[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCategoryRepo) Delete(_ context.Context, id uuid.UUID) (*models.Category, error) {
	for i, c := range m.categories {
		if c.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func newArticleService(repo *mockArticleRepo, catRepo *mockCategoryRepo) ArticleService {
	return NewArticleService(repo, catRepo, validator.NewValidator())
}

func TestCreateArticleDefaults(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := newArticleService(repo, &mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:  "Hello World",
		Blocks: []models.ContentBlock{{Type: models.BlockText, TextHTML: "<p>Hi</p>"}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.Slug != "hello-world" {
		t.Errorf("slug = %q, want hello-world", created.Slug)
	}
	if created.Status != models.StatusDraft {
		t.Errorf("status = %q, want draft by default", created.Status)
	}
	if created.PublishedAt != nil {
		t.Error("publishedAt must be absent for a draft")
	}
	if created.Excerpt != "Hi" {
		t.Errorf("excerpt = %q, want derived %q", created.Excerpt, "Hi")
	}
	if created.Content != "<p>Hi</p>" {
		t.Errorf("content = %q, want regenerated from blocks", created.Content)
	}
}

func TestCreateArticleRejectsMissingBody(t *testing.T) {
	svc := newArticleService(&mockArticleRepo{}, &mockCategoryRepo{})

	_, err := svc.Create(context.Background(), models.CreateArticleRequest{Title: "Empty"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.Create(context.Background(), models.CreateArticleRequest{})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}
}

func TestCreateArticleRejectsBadStatus(t *testing.T) {
	svc := newArticleService(&mockArticleRepo{}, &mockCategoryRepo{})

	_, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "Hello",
		Content: "<p>body</p>",
		Status:  "live",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("unrecognized status must fail validation, got %v", err)
	}
}

func TestCreateArticleEmptySlug(t *testing.T) {
	svc := newArticleService(&mockArticleRepo{}, &mockCategoryRepo{})

	_, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "!!!",
		Content: "<p>body</p>",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("title stripping to nothing must fail, got %v", err)
	}
}

func TestCreateArticleSlugCollisionSuffix(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := newArticleService(repo, &mockCategoryRepo{})

	first, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title: "News", Content: "<p>a</p>",
	})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.Slug != "news" {
		t.Fatalf("first slug = %q", first.Slug)
	}

	second, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title: "News!!", Content: "<p>b</p>",
	})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if !regexp.MustCompile(`^news-\d+$`).MatchString(second.Slug) {
		t.Errorf("colliding slug = %q, want news-<digits>", second.Slug)
	}
}

func TestCreatePublishedStampsPublishedAt(t *testing.T) {
	svc := newArticleService(&mockArticleRepo{}, &mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title: "Launch", Content: "<p>x</p>", Status: models.StatusPublished,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.PublishedAt == nil {
		t.Fatal("publishedAt must be stamped when created as published")
	}
}

func TestPublishedAtSetOnce(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := newArticleService(repo, &mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title: "Hello World",
		Blocks: []models.ContentBlock{
			{Type: models.BlockText, TextHTML: "<p>Hi</p>"},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.PublishedAt != nil {
		t.Fatal("draft must not carry publishedAt")
	}

	published := models.StatusPublished
	afterPublish, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Status: &published})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if afterPublish.PublishedAt == nil {
		t.Fatal("first publish must stamp publishedAt")
	}
	firstStamp := *afterPublish.PublishedAt

	archived := models.StatusArchived
	if _, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Status: &archived}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	again, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Status: &published})
	if err != nil {
		t.Fatalf("re-publish failed: %v", err)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(firstStamp) {
		t.Errorf("publishedAt changed on re-publish: %v != %v", again.PublishedAt, firstStamp)
	}
}

func TestUpdateSlugConflict(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := newArticleService(repo, &mockCategoryRepo{})

	if _, err := svc.Create(context.Background(), models.CreateArticleRequest{Title: "Taken", Content: "<p>a</p>"}); err != nil {
		t.Fatal(err)
	}
	other, err := svc.Create(context.Background(), models.CreateArticleRequest{Title: "Other", Content: "<p>b</p>"})
	if err != nil {
		t.Fatal(err)
	}

	taken := "taken"
	_, err = svc.Update(context.Background(), other.ID, models.UpdateArticleRequest{Slug: &taken})
	if !apperrors.IsConflict(err) {
		t.Fatalf("explicit slug change onto a taken slug must conflict, got %v", err)
	}

	// Re-sending the article's own slug is not a conflict.
	own := other.Slug
	if _, err := svc.Update(context.Background(), other.ID, models.UpdateArticleRequest{Slug: &own}); err != nil {
		t.Fatalf("own slug resend failed: %v", err)
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := newArticleService(repo, &mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title: "Original", Content: "<p>body</p>", Tags: []string{"a", "b"},
	})
	if err != nil {
		t.Fatal(err)
	}

	newTitle := "Renamed"
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateArticleRequest{Title: &newTitle})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Slug != created.Slug {
		t.Errorf("slug must not change unless sent explicitly, got %q", updated.Slug)
	}
	if len(updated.Tags) != 2 {
		t.Errorf("tags must survive a partial update, got %v", updated.Tags)
	}
}

func TestRecordView(t *testing.T) {
	repo := &mockArticleRepo{}
	svc := newArticleService(repo, &mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{Title: "Viewed", Content: "<p>v</p>"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		a, err := svc.RecordView(context.Background(), created.Slug)
		if err != nil {
			t.Fatalf("record view %d failed: %v", i, err)
		}
		if a.ViewCount != i {
			t.Errorf("view count after %d views = %d", i, a.ViewCount)
		}
	}

	if _, err := svc.RecordView(context.Background(), "missing"); err == nil {
		t.Error("recording a view on a missing slug must fail")
	}
}

func TestFindRelatedOverlap(t *testing.T) {
	catA, catB, catC, catD := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	subject := &models.Article{
		ID: uuid.New(), Slug: "subject", Status: models.StatusPublished,
		Categories: []models.CategoryRef{{ID: catA}, {ID: catB}},
	}
	sharesCat := &models.Article{
		ID: uuid.New(), Slug: "shares-cat", Status: models.StatusPublished,
		Categories: []models.CategoryRef{{ID: catB}, {ID: catC}},
	}
	noOverlap := &models.Article{
		ID: uuid.New(), Slug: "no-overlap", Status: models.StatusPublished,
		Categories: []models.CategoryRef{{ID: catC}, {ID: catD}},
	}
	sharesTag := &models.Article{
		ID: uuid.New(), Slug: "shares-tag", Status: models.StatusPublished,
		Tags: []string{"sport"},
	}
	subject.Tags = []string{"sport", "local"}

	repo := &mockArticleRepo{articles: []*models.Article{subject, sharesCat, noOverlap, sharesTag}}
	svc := newArticleService(repo, &mockCategoryRepo{})

	related, err := svc.FindRelated(context.Background(), "subject", 3)
	if err != nil {
		t.Fatal(err)
	}

	slugs := make([]string, 0, len(related))
	for _, a := range related {
		slugs = append(slugs, a.Slug)
	}
	got := strings.Join(slugs, ",")
	if got != "shares-cat,shares-tag" {
		t.Errorf("related = %s, want shares-cat,shares-tag in pool order", got)
	}
}

func TestFindRelatedLimit(t *testing.T) {
	tag := "shared"
	subject := &models.Article{ID: uuid.New(), Slug: "subject", Status: models.StatusPublished, Tags: []string{tag}}
	pool := []*models.Article{subject}
	for i := 0; i < 5; i++ {
		pool = append(pool, &models.Article{
			ID: uuid.New(), Slug: "cand", Status: models.StatusPublished, Tags: []string{tag},
		})
	}

	svc := newArticleService(&mockArticleRepo{articles: pool}, &mockCategoryRepo{})
	related, err := svc.FindRelated(context.Background(), "subject", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(related) != 3 {
		t.Errorf("related count = %d, want 3", len(related))
	}
}

func TestFindRelatedNothingToMatch(t *testing.T) {
	subject := &models.Article{ID: uuid.New(), Slug: "lonely", Status: models.StatusPublished}

	svc := newArticleService(&mockArticleRepo{articles: []*models.Article{subject}}, &mockCategoryRepo{})
	related, err := svc.FindRelated(context.Background(), "lonely", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(related) != 0 {
		t.Errorf("an article with no categories and no tags has no related set, got %d", len(related))
	}
}

func TestGetBySlugExpandsCategories(t *testing.T) {
	catRepo := &mockCategoryRepo{}
	cat, _ := catRepo.Create(context.Background(), &models.Category{TitleEn: "News", TitleAr: "أخبار", Slug: "news", Status: models.CategoryStatusActive})

	article := &models.Article{
		ID: uuid.New(), Slug: "with-cat", Status: models.StatusPublished,
		Categories: []models.CategoryRef{{ID: cat.ID}},
	}
	svc := newArticleService(&mockArticleRepo{articles: []*models.Article{article}}, catRepo)

	got, err := svc.GetBySlug(context.Background(), "with-cat")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 1 || got.Categories[0].Expanded == nil {
		t.Fatal("category ref was not expanded")
	}
	if got.Categories[0].Expanded.TitleEn != "News" {
		t.Errorf("expanded title = %q", got.Categories[0].Expanded.TitleEn)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" a ", "b", "a", "", "  ", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("normalizeTags = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("normalizeTags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCreateSanitizesContent(t *testing.T) {
	svc := newArticleService(&mockArticleRepo{}, &mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "Scripted",
		Content: `<p>ok</p><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(created.Content, "<script>") {
		t.Errorf("script tag survived sanitization: %q", created.Content)
	}
	if !strings.Contains(created.Content, "<p>ok</p>") {
		t.Errorf("benign markup was stripped: %q", created.Content)
	}
}
