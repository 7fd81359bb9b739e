package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without field",
			appErr: &AppError{
				Message: "something went wrong",
			},
			expected: "something went wrong",
		},
		{
			name: "with field",
			appErr: &AppError{
				Message: "is required",
				Field:   "email",
			},
			expected: "email: is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	originalErr := errors.New("original error")
	appErr := &AppError{
		Err:     originalErr,
		Message: "wrapped error",
	}

	assert.Equal(t, originalErr, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, originalErr))
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	err := NotFound("credit product")

	assert.Equal(t, "credit product not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBadRequest(t *testing.T) {
	t.Parallel()

	err := BadRequest("invalid input")

	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestValidationFields(t *testing.T) {
	t.Parallel()

	fields := map[string]string{
		"fullName": "El nombre es obligatorio",
		"email":    "Email inválido",
	}
	err := ValidationFields(fields)

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, fields, GetFields(err))
}

func TestGetStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"app error", NotFound("application"), http.StatusNotFound},
		{"sentinel not found", ErrNotFound, http.StatusNotFound},
		{"sentinel validation", ErrValidation, http.StatusBadRequest},
		{"sentinel conflict", ErrConflict, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetStatusCode(tt.err))
		})
	}
}

func TestGetMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "an internal error occurred", GetMessage(Internal(errors.New("db down"))))
	assert.Equal(t, "plain", GetMessage(errors.New("plain")))
}

func TestGetFields_NonAppError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, GetFields(errors.New("plain")))
}
