package handler

import (
	"encoding/json"
	"net/http"

	"github.com/credifacil/backend/internal/model"
)

// ApplicationHandler accepts credit application submissions.
type ApplicationHandler struct {
	service ApplicationServiceInterface
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(svc ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{service: svc}
}

// Submit validates the posted form and persists the application. A validation
// failure answers 400 with a field -> message map so the client can annotate
// each input; the form itself is never stored partially.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form model.ApplicationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.service.Submit(r.Context(), form)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, app)
}
