// Package validator holds the request schemas enforced at the API boundary.
// Payloads that fail here never reach the store.
package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

var (
	slugRegex      = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	tikTokRegex    = regexp.MustCompile(`^https://(www\.)?tiktok\.com/@[\w.-]+/video/\d+`)
	tikTokVMRegex  = regexp.MustCompile(`^https://vm\.tiktok\.com/\w+`)
	validStatuses  = []interface{}{models.StatusDraft, models.StatusPublished, models.StatusArchived}
	categoryStates = []interface{}{models.CategoryStatusActive, models.CategoryStatusInactive}
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateArticle checks a create payload: title plus either blocks or
// legacy content, valid enums, the tag cap, and block invariants.
func (v *Validator) ValidateCreateArticle(req *models.CreateArticleRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&req.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&req.Slug,
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&req.Tags,
			validation.Length(0, models.MaxTags).Error("too_many_tags"),
		),
	)
	if err != nil {
		return err
	}

	if len(req.Blocks) == 0 && req.Content == "" {
		return validation.Errors{
			"blocks": validation.NewError("content_required", "either blocks or content is required"),
		}
	}
	if err := validateTikTokURL(req.TikTokVideoURL); err != nil {
		return err
	}
	return models.ValidateBlocks(req.Blocks)
}

// ValidateUpdateArticle checks only the fields present in a partial update.
func (v *Validator) ValidateUpdateArticle(req *models.UpdateArticleRequest) error {
	if req.Title != nil && *req.Title == "" {
		return validation.Errors{
			"title": validation.NewError("title_required", "title cannot be empty"),
		}
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "invalid status"),
		}
	}
	if req.Slug != nil && !slugRegex.MatchString(*req.Slug) {
		return validation.Errors{
			"slug": validation.NewError("invalid_slug_format", "slug can only contain lowercase letters, numbers, and hyphens"),
		}
	}
	if req.Tags != nil && len(*req.Tags) > models.MaxTags {
		return validation.Errors{
			"tags": validation.NewError("too_many_tags", "maximum 30 tags allowed"),
		}
	}
	if req.TikTokVideoURL != nil {
		if err := validateTikTokURL(*req.TikTokVideoURL); err != nil {
			return err
		}
	}
	if req.Blocks != nil {
		return models.ValidateBlocks(*req.Blocks)
	}
	return nil
}

// ValidateCreateCategory requires both language titles.
func (v *Validator) ValidateCreateCategory(req *models.CreateCategoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.TitleEn,
			validation.Required.Error("title_en_required"),
		),
		validation.Field(&req.TitleAr,
			validation.Required.Error("title_ar_required"),
		),
		validation.Field(&req.Slug,
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&req.Status,
			validation.In(categoryStates...).Error("invalid_status"),
		),
	)
}

// ValidateUpdateCategory checks only the fields present.
func (v *Validator) ValidateUpdateCategory(req *models.UpdateCategoryRequest) error {
	if req.TitleEn != nil && *req.TitleEn == "" {
		return validation.Errors{
			"titleEn": validation.NewError("title_en_required", "English title cannot be empty"),
		}
	}
	if req.TitleAr != nil && *req.TitleAr == "" {
		return validation.Errors{
			"titleAr": validation.NewError("title_ar_required", "Arabic title cannot be empty"),
		}
	}
	if req.Slug != nil && !slugRegex.MatchString(*req.Slug) {
		return validation.Errors{
			"slug": validation.NewError("invalid_slug_format", "slug can only contain lowercase letters, numbers, and hyphens"),
		}
	}
	if req.Status != nil && *req.Status != models.CategoryStatusActive && *req.Status != models.CategoryStatusInactive {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "invalid status"),
		}
	}
	return nil
}

// ValidateSubmission enforces the tagged union: a known form type, a known
// status, and exactly one populated variant matching the tag. There is no
// cross-variant field validation beyond that.
func (v *Validator) ValidateSubmission(s *models.FormSubmission) error {
	if !models.ValidFormType(s.FormType) {
		return validation.Errors{
			"formType": validation.NewError("invalid_form_type", "invalid or missing formType"),
		}
	}
	if s.Status != "" && !models.ValidSubmissionStatus(s.Status) {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "invalid status"),
		}
	}
	if s.Email != "" {
		if err := validation.Validate(s.Email, is.Email.Error("invalid_email_format")); err != nil {
			return validation.Errors{"email": validation.NewError("invalid_email_format", "invalid email format")}
		}
	}
	if s.Variant() == nil {
		return validation.Errors{
			"formType": validation.NewError("variant_missing", "submission fields do not match formType"),
		}
	}
	if s.VariantCount() != 1 {
		return validation.Errors{
			"formType": validation.NewError("variant_ambiguous", "submission carries fields for more than one formType"),
		}
	}
	return nil
}

// ValidateEmail checks a newsletter signup address.
func (v *Validator) ValidateEmail(email string) error {
	return validation.Validate(email,
		validation.Required.Error("email_required"),
		is.Email.Error("invalid_email_format"),
	)
}

func validateTikTokURL(url string) error {
	if url == "" {
		return nil
	}
	if tikTokRegex.MatchString(url) || tikTokVMRegex.MatchString(url) {
		return nil
	}
	return validation.Errors{
		"tikTokVideoUrl": validation.NewError("invalid_tiktok_url", "please enter a valid TikTok video URL"),
	}
}
