// internal/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	version string
	pinger  Pinger
}

func NewHealthHandler(version string, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		version: version,
		pinger:  pinger,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	overall := "healthy"
	mongoStatus := "up"
	if err := h.pinger.Ping(ctx); err != nil {
		status = http.StatusServiceUnavailable
		overall = "degraded"
		mongoStatus = "down"
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"version":   h.version,
		"mongo":     mongoStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
