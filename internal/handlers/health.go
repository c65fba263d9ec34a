package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthCheck reports liveness and the status cache backend's health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
	}

	code := http.StatusOK
	if err := h.store.Health(r.Context()); err != nil {
		status["status"] = "degraded"
		status["cache_status"] = "unhealthy"
		status["cache_error"] = err.Error()
		code = http.StatusServiceUnavailable
	} else {
		status["cache_status"] = "healthy"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(status)
}
