package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/credifacil/backend/internal/apperror"
)

func TestRespondJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondError(rec, http.StatusBadRequest, "invalid id")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid id", resp.Error)
	assert.Empty(t, resp.Fields)
}

func TestRespondAppError(t *testing.T) {
	t.Parallel()

	t.Run("validation fields", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		respondAppError(rec, apperror.ValidationFields(map[string]string{"term": "Selecciona un plazo"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Selecciona un plazo", resp.Fields["term"])
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		respondAppError(rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
