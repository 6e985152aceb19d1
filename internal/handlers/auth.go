package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/config"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/services"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/utils/helpers"
)

type AuthHandler struct {
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Dashboard login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {object} object
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password, h.cfg.JWTSecret, h.cfg.AccessTokenTTL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.Error(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		logger.WithCtx(r.Context()).Error("login error", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{Token: token})
}
