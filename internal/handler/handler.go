// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
)

// ServiceName and ServiceVersion identify the API in the root payload.
const (
	ServiceName    = "Account REST API Service"
	ServiceVersion = "1.0"
)

// Handler wraps application dependencies for basic HTTP handlers.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Index returns static service metadata.
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"name":    ServiceName,
		"version": ServiceVersion,
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already flushed at this point; nothing left to do.
		_ = err
	}
}
