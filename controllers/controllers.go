package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"sennight_server/services"
)

// HealthCheckHandler reports liveness.
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"ts": time.Now().UnixMilli(),
	})
}

// WelcomeHandler greets visitors on the root path.
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "Welcome to Sennight")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeServiceError maps a service error to its HTTP status and puts
// the stable error kind on the wire.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal_error"

	switch {
	case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrMissingText):
		status = http.StatusBadRequest
		kind = err.Error()
	case errors.Is(err, services.ErrEmailExists):
		status = http.StatusConflict
		kind = err.Error()
	case errors.Is(err, services.ErrBadCredentials):
		status = http.StatusUnauthorized
		kind = err.Error()
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrProfileNotFound):
		status = http.StatusNotFound
		kind = err.Error()
	case errors.Is(err, services.ErrPhotosUnavailable):
		status = http.StatusServiceUnavailable
		kind = err.Error()
	default:
		log.Printf("Internal error: %v", err)
	}

	writeJSON(w, status, map[string]string{"error": kind})
}
