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

type SubmissionHandler struct {
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmission godoc
// @Summary Submit a form from the public site
// @Tags form-submissions
// @Accept json
// @Produce json
// @Param input body models.FormSubmission true "submission with exactly one variant"
// @Success 201 {object} models.FormSubmission
// @Failure 400 {object} object
// @Router /api/form-submissions [post]
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, true)
}

// CreateSubmissionAdmin accepts all form types, including the ones the
// public site cannot post (testimonials, good-project entries).
func (h *SubmissionHandler) CreateSubmissionAdmin(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, false)
}

func (h *SubmissionHandler) create(w http.ResponseWriter, r *http.Request, public bool) {
	var sub models.FormSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid JSON in form submission", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.submissionService.Create(r.Context(), &sub, public)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("failed to create form submission",
			zap.String("form_type", string(sub.FormType)), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("form submission created",
		zap.String("form_type", string(created.FormType)))
	helpers.JSON(w, http.StatusCreated, created)
}

// ListSubmissions godoc
// @Summary List form submissions (admin)
// @Tags admin-form-submissions
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "1-based page"
// @Param formType query string false "filter by form type"
// @Param status query string false "pending|reviewed|archived"
// @Param search query string false "search over name, email and phone"
// @Success 200 {object} object
// @Router /api/form-submissions [get]
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	p := listParams(r).Normalize()

	items, total, err := h.submissionService.List(r.Context(), p)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to list form submissions", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Paged(w, http.StatusOK, items, total, p.Page, p.TotalPages(total))
}

// GetSubmission godoc
// @Summary Fetch one form submission (admin)
// @Tags admin-form-submissions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "submission id"
// @Success 200 {object} models.FormSubmission
// @Failure 404 {object} object
// @Router /api/form-submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "malformed id")
		return
	}

	sub, err := h.submissionService.GetByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("submission lookup failed",
			zap.String("submission_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, sub)
}

// UpdateSubmission godoc
// @Summary Update a form submission (admin)
// @Tags admin-form-submissions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "submission id"
// @Param input body models.FormSubmission true "fields to change; formType is immutable"
// @Success 200 {object} models.FormSubmission
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /api/form-submissions/{id} [put]
func (h *SubmissionHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "malformed id")
		return
	}

	var upd models.FormSubmission
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid JSON in submission update", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sub, err := h.submissionService.Update(r.Context(), id, &upd)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to update form submission",
			zap.String("submission_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, sub)
}

// DeleteSubmission godoc
// @Summary Delete a form submission (admin)
// @Tags admin-form-submissions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "submission id"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /api/form-submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "malformed id")
		return
	}

	sub, err := h.submissionService.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to delete form submission",
			zap.String("submission_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Message(w, http.StatusOK, "submission deleted", sub)
}
