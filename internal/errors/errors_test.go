package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upstreamcli/internal/infrastructure"
)

func TestAppError(t *testing.T) {
	cause := errors.New("open Integrado.csv: no such file or directory")
	err := NewFileNotFoundError("Integrado.csv", cause)

	assert.Equal(t, ErrTypeFileNotFound, err.Type)
	assert.Equal(t, "Integrado.csv", err.Context["path"])
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "no se encontró el archivo Integrado.csv")

	wrapped := fmt.Errorf("loading: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeFileNotFound))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))

	missing := NewMissingInputError("lote", "Por favor, ingresa un lote para continuar.")
	assert.Equal(t, "[MISSING_INPUT] Por favor, ingresa un lote para continuar.", missing.Error())
}

func TestErrorHandler_HandleError(t *testing.T) {
	h := NewErrorHandler(slog.New(slog.NewJSONHandler(io.Discard, nil)), false)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"file not found", NewFileNotFoundError("Integrado.csv", nil), http.StatusServiceUnavailable, TypeDataNotFound},
		{"load error", NewLoadError("línea 4", nil), http.StatusServiceUnavailable, TypeDataCorrupted},
		{"missing input", NewMissingInputError("lote", "vacío"), http.StatusBadRequest, TypeMissingInput},
		{"validation", NewValidationErrors([]ValidationError{{Field: "lote", Message: "lote is required"}}), http.StatusBadRequest, TypeValidation},
		{"deadline", fmt.Errorf("build: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, TypeTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/report?lote=88", nil)
			req = req.WithContext(infrastructure.WithTraceID(req.Context(), "trace-1"))
			rec := httptest.NewRecorder()

			h.HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body["type"])
			assert.Equal(t, float64(tt.wantStatus), body["status"])
			assert.Equal(t, "trace-1", body["trace_id"])
			assert.Equal(t, "/api/report", body["instance"])
		})
	}
}

func TestErrorHandler_NotFound(t *testing.T) {
	h := NewErrorHandler(slog.New(slog.NewJSONHandler(io.Discard, nil)), false)
	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), TypeNotFound)
}
