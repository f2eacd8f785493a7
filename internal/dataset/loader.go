package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "upstreamcli/internal/errors"
	"upstreamcli/pkg/contracts/domain"
)

var yearPattern = regexp.MustCompile(`(\d{4})`)

// Options tune how the source file is read.
type Options struct {
	// Encoding of the source file: utf-8 (default), windows-1252 or latin1.
	Encoding string
}

// Load reads the CSV file at path. A missing file yields a FILE_NOT_FOUND
// AppError; any other failure yields a LOAD AppError and no partial data.
func Load(ctx context.Context, path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewFileNotFoundError(path, err)
		}
		return nil, apperrors.NewLoadError(fmt.Sprintf("no se pudo abrir %s", path), err)
	}
	defer f.Close()

	records, err := Read(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	return New(path, records), nil
}

// Read parses CSV content into coerced records.
func Read(ctx context.Context, r io.Reader, opts Options) ([]domain.Record, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, apperrors.NewLoadError(err.Error(), err)
	}

	reader := csv.NewReader(bufio.NewReader(transform.NewReader(r, dec.NewDecoder())))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewLoadError("el archivo está vacío", err)
		}
		return nil, apperrors.NewLoadError("no se pudo leer el encabezado", err)
	}

	cols, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewLoadError("error de formato CSV", err)
		}

		line, _ := reader.FieldPos(0)
		if len(row) > len(header) {
			return nil, apperrors.NewLoadError(
				fmt.Sprintf("línea %d: se esperaban %d campos, se encontraron %d", line, len(header), len(row)), nil).
				WithContext("line", line)
		}

		rec, err := cols.record(row)
		if err != nil {
			return nil, apperrors.NewLoadError(fmt.Sprintf("línea %d", line), err).
				WithContext("line", line)
		}
		records = append(records, rec)
	}

	return records, nil
}

// decoderFor maps a configured encoding name to a decoder. UTF-8 input has
// its byte order mark stripped.
func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", name)
	}
}

// columnIndex maps the header to field positions; -1 marks an absent column.
type columnIndex struct {
	lote, kind, year int
	measures         [domain.MeasureCount]int
}

func newColumnIndex(header []string) (*columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	lookup := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	cols := &columnIndex{
		lote: lookup(domain.ColumnLote),
		kind: lookup(domain.ColumnType),
		year: lookup(domain.ColumnYear),
	}

	var missing []string
	for _, req := range []struct {
		name string
		pos  int
	}{
		{domain.ColumnLote, cols.lote},
		{domain.ColumnType, cols.kind},
		{domain.ColumnYear, cols.year},
	} {
		if req.pos < 0 {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewLoadError(
			fmt.Sprintf("faltan columnas obligatorias: %s", strings.Join(missing, ", ")), nil).
			WithContext("missing_columns", missing)
	}

	for _, m := range domain.Measures() {
		cols.measures[m] = lookup(m.Column())
	}
	return cols, nil
}

func (c *columnIndex) record(row []string) (domain.Record, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	match := yearPattern.FindString(cell(c.year))
	if match == "" {
		return domain.Record{}, fmt.Errorf("año inválido %q", cell(c.year))
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return domain.Record{}, fmt.Errorf("año inválido %q: %w", cell(c.year), err)
	}

	rec := domain.Record{
		Lote: strings.TrimSpace(cell(c.lote)),
		Type: domain.HydrocarbonType(strings.TrimSpace(cell(c.kind))),
		Year: year,
	}
	for m, i := range c.measures {
		rec.Values[m] = coerce(cell(i))
	}
	return rec, nil
}

// coerce parses a numeric cell. Empty, unparseable, non-finite and negative
// values become zero.
func coerce(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
