package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/service"
)

type healthResponse struct {
	*service.HealthStatus
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck handles GET /api/health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == service.HealthStatusUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, healthResponse{
		HealthStatus: health,
		Timestamp:    time.Now(),
	})
}
