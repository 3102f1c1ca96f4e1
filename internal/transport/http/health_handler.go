package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apiv1 "labpulse/pkg/contracts/api/v1"
)

// HealthHandler serves the liveness and version probes.
type HealthHandler struct {
	version   string
	buildTime string
	logger    *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version, buildTime string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		version:   version,
		buildTime: buildTime,
		logger:    logger.With(slog.String("handler", "health")),
	}
}

// RegisterRoutes registers probe routes on the given router
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/version", h.Version)
}

// HealthCheck handles GET /healthz
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, apiv1.HealthResponse{Status: "ok"})
}

// Version handles GET /api/v1/version. Clients use it as a probe before
// shipping work to the API.
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, apiv1.VersionResponse{
		Version:   h.version,
		BuildTime: h.buildTime,
		Available: true,
	})
}
