package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveDataFile returns an absolute path for the configured data file.
// Relative paths are tried against the working directory first and then the
// directory of the running executable; the working-directory form is
// returned when neither exists so the loader can report it.
func ResolveDataFile(file string) (string, error) {
	if filepath.IsAbs(file) {
		return file, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	candidate := filepath.Join(wd, file)
	if FileExists(candidate) {
		return candidate, nil
	}

	if exe, err := os.Executable(); err == nil {
		if exe, err = filepath.EvalSymlinks(exe); err == nil {
			alt := filepath.Join(filepath.Dir(exe), file)
			if FileExists(alt) {
				return alt, nil
			}
		}
	}

	return candidate, nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
