package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/db"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils/helpers"
)

type HealthHandler struct {
	pool *pgxpool.Pool
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Healthz godoc
// @Summary Liveness and store reachability probe
// @Tags system
// @Produce json
// @Success 200 {object} object
// @Failure 503 {object} object
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := db.HealthCheck(ctx, h.pool); err != nil {
		logger.WithCtx(r.Context()).Error("health check failed", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
