package api

import (
	"delivery-assignment-service/internal/api/handlers"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(assignments *handlers.AssignmentHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", handlers.Metrics())
	mux.HandleFunc("/assignments", assignments.Assign)

	return requestIDMiddleware(loggingMiddleware(mux))
}
