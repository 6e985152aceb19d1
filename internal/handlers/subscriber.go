package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/services"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils/helpers"
)

type SubscriberHandler struct {
	subscriberService services.SubscriberService
}

func NewSubscriberHandler(subscriberService services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe godoc
// @Summary Subscribe an email to the newsletter
// @Tags newsletters
// @Accept json
// @Produce json
// @Param input body subscribeRequest true "email to subscribe"
// @Success 201 {object} models.Subscriber
// @Failure 400 {object} object
// @Router /api/newsletters [post]
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sub, err := h.subscriberService.Subscribe(r.Context(), req.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("newsletter subscribe failed", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("newsletter subscriber added", zap.String("email", sub.Email))
	helpers.JSON(w, http.StatusCreated, sub)
}

// ListSubscribers godoc
// @Summary List newsletter subscribers (admin)
// @Tags admin-newsletters
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "1-based page"
// @Param search query string false "search over emails"
// @Param stats query bool false "return monthly signup counts instead"
// @Success 200 {object} object
// @Router /api/newsletters [get]
func (h *SubscriberHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	if stats, err := strconv.ParseBool(r.URL.Query().Get("stats")); err == nil && stats {
		monthly, err := h.subscriberService.MonthlyStats(r.Context())
		if err != nil {
			logger.WithCtx(r.Context()).Error("failed to compute subscriber stats", zap.Error(err))
			helpers.FromError(w, err)
			return
		}
		helpers.JSON(w, http.StatusOK, monthly)
		return
	}

	p := listParams(r).Normalize()

	items, total, err := h.subscriberService.List(r.Context(), p)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to list subscribers", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Paged(w, http.StatusOK, items, total, p.Page, p.TotalPages(total))
}

// UpdateSubscriber godoc
// @Summary Change a subscriber's email (admin)
// @Tags admin-newsletters
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id query string true "subscriber id"
// @Param input body subscribeRequest true "new email"
// @Success 200 {object} models.Subscriber
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /api/newsletters [put]
func (h *SubscriberHandler) UpdateSubscriber(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromQuery(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "missing or malformed id")
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sub, err := h.subscriberService.Update(r.Context(), id, req.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to update subscriber",
			zap.String("subscriber_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, sub)
}

// DeleteSubscriber godoc
// @Summary Remove a subscriber (admin)
// @Tags admin-newsletters
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body deleteRequest true "id of the subscriber"
// @Success 200 {object} object
// @Failure 404 {object} object
// @Router /api/newsletters [delete]
func (h *SubscriberHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromBody(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "missing or malformed id")
		return
	}

	sub, err := h.subscriberService.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to delete subscriber",
			zap.String("subscriber_id", id.String()), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.Message(w, http.StatusOK, "subscriber deleted", sub)
}
