package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	baseDir string
}

// NewCSVWriter creates a CSV writer resolving relative paths against baseDir.
func NewCSVWriter(baseDir string) *CSVWriter {
	return &CSVWriter{baseDir: baseDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file, replacing any previous content.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	slog.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return WriteCSVTo(file, options)
}

// WriteCSVTo writes headers and records to out.
func WriteCSVTo(out io.Writer, options WriteOptions) error {
	sw, err := NewStreamWriter(out, options.Headers, options.BOMPrefix)
	if err != nil {
		return err
	}

	for i, record := range options.Records {
		if err := sw.WriteRecord(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return sw.Flush()
}

// StreamWriter writes CSV records one at a time.
type StreamWriter struct {
	writer *csv.Writer
}

// NewStreamWriter starts a CSV stream on out, writing the BOM and headers
// when given.
func NewStreamWriter(out io.Writer, headers []string, bom bool) (*StreamWriter, error) {
	if bom {
		if _, err := out.Write(utf8BOM); err != nil {
			return nil, fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)

	if len(headers) > 0 {
		if err := writer.Write(headers); err != nil {
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	return &StreamWriter{writer: writer}, nil
}

// WriteRecord writes a single record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Flush flushes buffered records and reports any write error.
func (s *StreamWriter) Flush() error {
	s.writer.Flush()
	return s.writer.Error()
}

// resolvePath resolves a relative path against the base directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.baseDir == "" {
		return filePath
	}
	return filepath.Join(w.baseDir, filePath)
}
