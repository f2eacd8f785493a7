package validation

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "upstreamcli/internal/errors"
	api "upstreamcli/pkg/contracts/api/v1"
)

func TestFileValidator_ValidateDataFile(t *testing.T) {
	v := NewFileValidator(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantType apperrors.ErrorType
	}{
		{
			name: "valid csv",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "Integrado.csv")
				require.NoError(t, os.WriteFile(path, []byte("Lote\n88\n"), 0644))
				return path
			},
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "Integrado.csv")
			},
			wantType: apperrors.ErrTypeFileNotFound,
		},
		{
			name: "directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			wantType: apperrors.ErrTypeLoad,
		},
		{
			name: "empty file",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "empty.csv")
				require.NoError(t, os.WriteFile(path, nil, 0644))
				return path
			},
			wantType: apperrors.ErrTypeLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDataFile(tt.setup(t))
			if tt.wantType == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestFileValidator_ValidateOutputPath(t *testing.T) {
	v := NewFileValidator(nil)
	dir := t.TempDir()

	assert.NoError(t, v.ValidateOutputPath(filepath.Join(dir, "nested", "report.xlsx")))
	assert.DirExists(t, filepath.Join(dir, "nested"))

	err := v.ValidateOutputPath(dir)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestRequestValidator(t *testing.T) {
	rv := NewRequestValidator()

	assert.NoError(t, rv.Struct(api.ReportRequest{Lote: "88", Format: "csv"}))
	assert.NoError(t, rv.Struct(api.ReportRequest{Lote: "Z-1"}))

	err := rv.Struct(api.ReportRequest{Format: "pdf"})
	require.Error(t, err)

	var apiErr *apperrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "VALIDATION_FAILED", apiErr.ErrorCode)

	details, ok := apiErr.Details.(apperrors.ValidationErrors)
	require.True(t, ok)
	require.Len(t, details.Errors, 2)
	assert.Equal(t, "lote", details.Errors[0].Field)
	assert.Equal(t, "lote is required", details.Errors[0].Message)
	assert.Equal(t, "format", details.Errors[1].Field)

	assert.Error(t, rv.Struct(api.ReportRequest{Lote: "../etc"}))
}
