package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "upstreamcli/internal/errors"
)

// FileValidator checks the files the CLI reads and writes.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateDataFile checks that path names a readable, non-empty regular
// file. A missing file is reported as FILE_NOT_FOUND.
func (v *FileValidator) ValidateDataFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Data file does not exist", slog.String("path", path))
		return apperrors.NewFileNotFoundError(path, err)
	}
	if err != nil {
		v.logger.Error("Failed to stat data file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return apperrors.NewLoadError(fmt.Sprintf("no se pudo acceder a %s", path), err)
	}
	if info.IsDir() {
		return apperrors.NewLoadError(fmt.Sprintf("%s es un directorio", path), nil)
	}
	if info.Size() == 0 {
		return apperrors.NewLoadError(fmt.Sprintf("%s está vacío", path), nil)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		v.logger.Warn("Data file does not have a .csv extension",
			slog.String("path", path),
			slog.String("extension", ext))
	}

	v.logger.Debug("Data file validated",
		slog.String("path", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputPath ensures the directory of path exists or can be created
// and that path itself is not a directory.
func (v *FileValidator) ValidateOutputPath(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return apperrors.NewAppValidationError(fmt.Sprintf("output path %s is a directory", path))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return nil
}
