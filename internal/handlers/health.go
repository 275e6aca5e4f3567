package handlers

import "net/http"

// RootResponse is the static payload returned by GET /.
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is the static payload returned by GET /health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// NewRootHandler returns the static liveness handler for GET /.
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: "Task Management API",
			Version: version,
		})
	}
}

// NewHealthHandler returns the static handler for GET /health.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
