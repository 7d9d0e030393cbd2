package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/factorial-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/factorial-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes shared by both
// services.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive if it can answer.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise. With no checks registered the service is ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = statusOK
	}

	writeJSON(w, code, resp)
}
