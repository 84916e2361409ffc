package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds the store ping.
const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	store   Pinger
	backend string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Store     string `json:"store"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(store Pinger, backend string) *HealthController {
	return &HealthController{
		store:   store,
		backend: backend,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its state store.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err == nil {
			storeStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Backend:   h.backend,
		Store:     storeStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
