package handler

import (
	"encoding/json"
	"net/http"

	"github.com/credifacil/backend/internal/apperror"
)

// ErrorResponse represents a JSON error response body. Fields carries the
// per-field messages of a failed form validation.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Field  string            `json:"field,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a JSON error response with the given status code and message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondAppError writes a JSON error response from any error, extracting
// status, message and validation fields when it is an AppError.
func respondAppError(w http.ResponseWriter, err error) {
	respondJSON(w, apperror.GetStatusCode(err), ErrorResponse{
		Error:  apperror.GetMessage(err),
		Fields: apperror.GetFields(err),
	})
}
