package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// MaxTags mirrors the dashboard's per-article tag limit.
const MaxTags = 30

// ValidStatus reports whether s is a recognized publication status. An
// unrecognized value is always rejected, never coerced to a default.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// Article is a flat document: blocks, tags and category refs are embedded,
// not joined. PublishedAt is a first-publish timestamp — set once on the
// first transition into published and never altered afterwards.
type Article struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	TitleAr         string         `json:"titleAR,omitempty"`
	Slug            string         `json:"slug"`
	Content         string         `json:"content,omitempty"` // legacy single-blob body
	Blocks          []ContentBlock `json:"blocks,omitempty"`
	Excerpt         string         `json:"excerpt,omitempty"`
	ExcerptAr       string         `json:"excerptAR,omitempty"`
	FeaturedImage   string         `json:"featuredImage,omitempty"`
	TikTokVideoURL  string         `json:"tikTokVideoUrl,omitempty"`
	Status          string         `json:"status"`
	Tags            []string       `json:"tags"`
	Categories      []CategoryRef  `json:"categories"`
	MetaTitle       string         `json:"metaTitle,omitempty"`
	MetaDescription string         `json:"metaDescription,omitempty"`
	PublishedAt     *time.Time     `json:"publishedAt,omitempty"`
	ViewCount       int            `json:"viewCount"`
	Featured        bool           `json:"featured"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title           string         `json:"title" example:"Hello World"`
	TitleAr         string         `json:"titleAR,omitempty"`
	Slug            string         `json:"slug,omitempty"`
	Content         string         `json:"content,omitempty"`
	Blocks          []ContentBlock `json:"blocks,omitempty"`
	Excerpt         string         `json:"excerpt,omitempty"`
	ExcerptAr       string         `json:"excerptAR,omitempty"`
	FeaturedImage   string         `json:"featuredImage,omitempty"`
	TikTokVideoURL  string         `json:"tikTokVideoUrl,omitempty"`
	Status          string         `json:"status,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Categories      []string       `json:"categories,omitempty"`
	MetaTitle       string         `json:"metaTitle,omitempty"`
	MetaDescription string         `json:"metaDescription,omitempty"`
	Featured        bool           `json:"featured,omitempty"`
}

// UpdateArticleRequest carries only what the client wants changed; nil
// pointers leave the stored value untouched.
// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Title           *string         `json:"title,omitempty"`
	TitleAr         *string         `json:"titleAR,omitempty"`
	Slug            *string         `json:"slug,omitempty"`
	Content         *string         `json:"content,omitempty"`
	Blocks          *[]ContentBlock `json:"blocks,omitempty"`
	Excerpt         *string         `json:"excerpt,omitempty"`
	ExcerptAr       *string         `json:"excerptAR,omitempty"`
	FeaturedImage   *string         `json:"featuredImage,omitempty"`
	TikTokVideoURL  *string         `json:"tikTokVideoUrl,omitempty"`
	Status          *string         `json:"status,omitempty"`
	Tags            *[]string       `json:"tags,omitempty"`
	Categories      *[]string       `json:"categories,omitempty"`
	MetaTitle       *string         `json:"metaTitle,omitempty"`
	MetaDescription *string         `json:"metaDescription,omitempty"`
	Featured        *bool           `json:"featured,omitempty"`
}
