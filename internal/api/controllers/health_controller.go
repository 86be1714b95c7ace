package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gymapi/internal/repositories"
	"gymapi/pkg/utils"
)

const healthTimeout = 2 * time.Second

type HealthController struct {
	store repositories.Store
}

func NewHealthController(store repositories.Store) *HealthController {
	return &HealthController{store: store}
}

// Health godoc
// @Summary Liveness and storage check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.RequestLogger(c).WithError(err).Warn("storage ping failed")
		utils.RespondError(c, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	utils.RespondSuccess(c, gin.H{"storage": "ok"}, "Service is healthy")
}
