package handlers

import "net/http"

// HealthCheck always reports ok; it does not probe the upstream services.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
