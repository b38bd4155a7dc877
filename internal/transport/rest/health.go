package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version   string
	languages int
}

// NewHealthHandler creates a HealthHandler reporting the loaded vocabulary size.
func NewHealthHandler(version string, languages int) *HealthHandler {
	return &HealthHandler{version: version, languages: languages}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Languages int       `json:"languages"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports service status and the number of loaded languages.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Languages: h.languages,
		Timestamp: time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
