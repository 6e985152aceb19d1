package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

func newCategoryService(repo *mockCategoryRepo) CategoryService {
	return NewCategoryService(repo, validator.NewValidator())
}

func TestCreateCategorySlugFromTitle(t *testing.T) {
	svc := newCategoryService(&mockCategoryRepo{})

	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{
		TitleEn: "News", TitleAr: "أخبار",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "news" {
		t.Errorf("slug = %q, want news", created.Slug)
	}
	if created.Status != models.CategoryStatusActive {
		t.Errorf("status = %q, want active by default", created.Status)
	}
}

func TestCreateCategoryCollisionSuffix(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := newCategoryService(repo)

	if _, err := svc.Create(context.Background(), models.CreateCategoryRequest{TitleEn: "News", TitleAr: "أخبار"}); err != nil {
		t.Fatal(err)
	}

	second, err := svc.Create(context.Background(), models.CreateCategoryRequest{TitleEn: "News!!", TitleAr: "أخبار"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if !regexp.MustCompile(`^news-\d+$`).MatchString(second.Slug) {
		t.Errorf("colliding slug = %q, want news-<digits>", second.Slug)
	}
}

func TestCreateCategoryRequiresBothTitles(t *testing.T) {
	svc := newCategoryService(&mockCategoryRepo{})

	_, err := svc.Create(context.Background(), models.CreateCategoryRequest{TitleEn: "News"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("missing Arabic title must fail, got %v", err)
	}

	_, err = svc.Create(context.Background(), models.CreateCategoryRequest{TitleAr: "أخبار"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("missing English title must fail, got %v", err)
	}
}

func TestUpdateCategorySlugConflict(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := newCategoryService(repo)

	if _, err := svc.Create(context.Background(), models.CreateCategoryRequest{TitleEn: "News", TitleAr: "أخبار"}); err != nil {
		t.Fatal(err)
	}
	other, err := svc.Create(context.Background(), models.CreateCategoryRequest{TitleEn: "Sports", TitleAr: "رياضة"})
	if err != nil {
		t.Fatal(err)
	}

	news := "news"
	_, err = svc.Update(context.Background(), other.ID, models.UpdateCategoryRequest{Slug: &news})
	if !apperrors.IsConflict(err) {
		t.Fatalf("update onto a taken slug must conflict, got %v", err)
	}
}

func TestUpdateCategoryBadStatus(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := newCategoryService(repo)

	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{TitleEn: "News", TitleAr: "أخبار"})
	if err != nil {
		t.Fatal(err)
	}

	bad := "hidden"
	_, err = svc.Update(context.Background(), created.ID, models.UpdateCategoryRequest{Status: &bad})
	if !apperrors.IsValidation(err) {
		t.Fatalf("unknown status must fail validation, got %v", err)
	}
}
