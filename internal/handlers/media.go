package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/services"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils/helpers"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// MediaInfo godoc
// @Summary Inspect a remote media URL
// @Tags media
// @Produce json
// @Param url query string true "absolute http(s) URL"
// @Success 200 {object} services.MediaInfo
// @Failure 400 {object} object
// @Router /api/media/info [get]
func (h *MediaHandler) MediaInfo(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")

	info, err := h.mediaService.Inspect(r.Context(), rawURL)
	if err != nil {
		if apperrors.IsValidation(err) {
			helpers.FromError(w, err)
			return
		}
		logger.WithCtx(r.Context()).Warn("media info fetch failed",
			zap.String("url", rawURL), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "failed to fetch media info")
		return
	}

	helpers.JSON(w, http.StatusOK, info)
}
