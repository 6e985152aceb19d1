package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

func TestValidateCreateArticleSlugFormat(t *testing.T) {
	v := NewValidator()

	for _, slug := range []string{"", "news", "hello-world", "n-1"} {
		req := models.CreateArticleRequest{Title: "T", Content: "<p>x</p>", Slug: slug}
		assert.NoError(t, v.ValidateCreateArticle(&req), "slug %q", slug)
	}

	for _, slug := range []string{"Hello", "with space", "-lead", "trail-", "a--b"} {
		req := models.CreateArticleRequest{Title: "T", Content: "<p>x</p>", Slug: slug}
		assert.Error(t, v.ValidateCreateArticle(&req), "slug %q", slug)
	}
}

func TestValidateCreateArticleTagCap(t *testing.T) {
	v := NewValidator()

	tags := make([]string, models.MaxTags)
	for i := range tags {
		tags[i] = "t"
	}
	req := models.CreateArticleRequest{Title: "T", Content: "<p>x</p>", Tags: tags}
	assert.NoError(t, v.ValidateCreateArticle(&req))

	req.Tags = append(tags, "one-too-many")
	assert.Error(t, v.ValidateCreateArticle(&req))
}

func TestValidateTikTokURL(t *testing.T) {
	v := NewValidator()

	ok := []string{
		"",
		"https://www.tiktok.com/@thegoodnews/video/7234567890123456789",
		"https://tiktok.com/@user.name/video/123",
		"https://vm.tiktok.com/ZM1abc",
	}
	for _, url := range ok {
		req := models.CreateArticleRequest{Title: "T", Content: "<p>x</p>", TikTokVideoURL: url}
		assert.NoError(t, v.ValidateCreateArticle(&req), "url %q", url)
	}

	bad := []string{
		"https://youtube.com/watch?v=abc",
		"http://www.tiktok.com/@user/video/123",
		"tiktok.com/@user/video/123",
	}
	for _, url := range bad {
		req := models.CreateArticleRequest{Title: "T", Content: "<p>x</p>", TikTokVideoURL: url}
		assert.Error(t, v.ValidateCreateArticle(&req), "url %q", url)
	}
}

func TestValidateUpdateArticlePointerwise(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateUpdateArticle(&models.UpdateArticleRequest{}))

	empty := ""
	assert.Error(t, v.ValidateUpdateArticle(&models.UpdateArticleRequest{Title: &empty}))

	bad := "live"
	assert.Error(t, v.ValidateUpdateArticle(&models.UpdateArticleRequest{Status: &bad}))

	good := models.StatusArchived
	assert.NoError(t, v.ValidateUpdateArticle(&models.UpdateArticleRequest{Status: &good}))

	blocks := []models.ContentBlock{{Type: models.BlockImage}}
	assert.Error(t, v.ValidateUpdateArticle(&models.UpdateArticleRequest{Blocks: &blocks}))
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateEmail("reader@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
}
