package files

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "upstreamcli/internal/errors"
	"upstreamcli/internal/infrastructure"
)

// Manager provides file management operations for report output
type Manager struct {
	baseDir string
	logger  *slog.Logger
}

// NewManager creates a file manager rooted at baseDir. Relative paths passed
// to its methods are resolved against baseDir.
func NewManager(baseDir string, logger *slog.Logger) *Manager {
	return &Manager{
		baseDir: baseDir,
		logger:  infrastructure.WithComponent(logger, "files"),
	}
}

// FileExists checks if a file exists at the given path
func (m *Manager) FileExists(path string) bool {
	fullPath := m.Resolve(path)
	_, err := os.Stat(fullPath)
	exists := err == nil

	m.logger.Debug("FileExists check",
		slog.String("path", path),
		slog.String("full_path", fullPath),
		slog.Bool("exists", exists))

	return exists
}

// EnsureDirectory creates a directory if it doesn't exist
func (m *Manager) EnsureDirectory(path string) error {
	fullPath := m.Resolve(path)

	m.logger.Debug("Ensuring directory exists",
		slog.String("path", path),
		slog.String("full_path", fullPath))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return os.MkdirAll(fullPath, 0755)
	}
	return nil
}

// WriteFile writes data to a file
func (m *Manager) WriteFile(path string, data []byte) error {
	return m.Create(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// Create streams write's output into path. The file only appears once write
// returns nil.
func (m *Manager) Create(path string, write func(io.Writer) error) error {
	fullPath := m.Resolve(path)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory", err).WithContext("path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*")
	if err != nil {
		return apperrors.NewStorageError("failed to create temporary file", err).WithContext("path", fullPath)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return apperrors.NewStorageError("failed to sync file", err).WithContext("path", fullPath)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewStorageError("failed to close file", err).WithContext("path", fullPath)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		return apperrors.NewStorageError("failed to move file into place", err).WithContext("path", fullPath)
	}

	info, _ := os.Stat(fullPath)
	attrs := []any{slog.String("path", fullPath)}
	if info != nil {
		attrs = append(attrs, slog.Int64("size_bytes", info.Size()))
	}
	m.logger.Info("File written", attrs...)
	return nil
}

// Resolve returns path joined to the base directory unless it is absolute.
func (m *Manager) Resolve(path string) string {
	if filepath.IsAbs(path) || m.baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(m.baseDir, path)
}
