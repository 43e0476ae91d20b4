package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spotnere-backend/internal/supabase"
)

// HealthHandler serves liveness and readiness probes plus the root banner.
type HealthHandler struct {
	sb           *supabase.Client
	checkTimeout time.Duration
}

func NewHealthHandler(sb *supabase.Client) *HealthHandler {
	return &HealthHandler{sb: sb, checkTimeout: 2 * time.Second}
}

// RegisterRoutes binds the probes at the server root, outside the /api group.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Spotnere Admin API is running"})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "spotnere-admin-api"})
}

// Healthz reports process liveness.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports whether the upstream data platform is reachable.
func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	checks := map[string]string{}
	if err := h.sb.Ping(ctx); err != nil {
		checks["supabase"] = err.Error()
	}

	if len(checks) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "fail",
			"checks": checks,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
