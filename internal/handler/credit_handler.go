package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credifacil/backend/internal/repository"
	"github.com/credifacil/backend/internal/service"
)

// CreditHandler serves the product catalog and payment simulations.
type CreditHandler struct {
	service CatalogServiceInterface
}

// NewCreditHandler creates a new credit catalog handler.
func NewCreditHandler(svc CatalogServiceInterface) *CreditHandler {
	return &CreditHandler{service: svc}
}

// List returns the full catalog. There are no filters: the product pages
// always render every offering.
func (h *CreditHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch credits")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// Get returns one catalog product.
func (h *CreditHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "credit not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Simulate returns the estimated monthly payment for a product, amount and
// term. The estimate is recomputed on every call so the client can refresh it
// whenever an input changes.
func (h *CreditHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	amountStr := r.URL.Query().Get("amount")
	if amountStr == "" {
		respondError(w, http.StatusBadRequest, "amount parameter is required")
		return
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid amount parameter")
		return
	}

	termStr := r.URL.Query().Get("term")
	if termStr == "" {
		respondError(w, http.StatusBadRequest, "term parameter is required")
		return
	}
	term, err := strconv.Atoi(termStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid term parameter")
		return
	}

	result, err := h.service.Simulate(r.Context(), id, amount, term)
	switch {
	case errors.Is(err, service.ErrNegativeAmount), errors.Is(err, service.ErrInvalidTerm):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, repository.ErrCreditNotFound):
		respondError(w, http.StatusNotFound, "credit not found")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to simulate payment")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Seed populates an empty catalog with the launch products.
func (h *CreditHandler) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.SeedDefaults(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to seed credits: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"seeded": n})
}
