package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	apperrors "upstreamcli/internal/errors"
	"upstreamcli/pkg/contracts/domain"
)

const fixture = "testdata/integrado.csv"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Fixture(t *testing.T) {
	ds, err := Load(context.Background(), fixture, Options{})
	require.NoError(t, err)

	assert.Equal(t, 6, ds.Len())
	assert.Equal(t, fixture, ds.Source())
	assert.Equal(t, []string{"56", "88", "X", "Z-1"}, ds.Lotes())
	assert.False(t, ds.LoadedAt().IsZero())

	first := ds.Records()[0]
	assert.Equal(t, "88", first.Lote)
	assert.Equal(t, domain.HydrocarbonGas, first.Type)
	assert.Equal(t, 2023, first.Year)
	assert.Equal(t, 5000.0, first.Value(domain.MeasureProvedP1))
	assert.Equal(t, 100.0, first.Value(domain.MeasureProduction))
}

func TestLoad_Coercion(t *testing.T) {
	ds, err := Load(context.Background(), fixture, Options{})
	require.NoError(t, err)

	oil := ds.Filter(func(r domain.Record) bool { return r.Lote == "X" })
	require.Len(t, oil, 1)
	rec := oil[0]

	assert.Equal(t, 2023, rec.Year, "year is the first four digit run")
	assert.Equal(t, 0.0, rec.Value(domain.MeasureProbableP2), "unparseable becomes zero")
	assert.Equal(t, 0.0, rec.Value(domain.MeasurePossibleP3), "negative becomes zero")
	assert.Equal(t, 1.5, rec.Value(domain.MeasureInvestment))

	ngl := ds.Filter(func(r domain.Record) bool { return r.Lote == "Z-1" })
	require.Len(t, ngl, 1)
	assert.Equal(t, 2022, ngl[0].Year)

	for _, r := range ds.Records() {
		for _, m := range domain.Measures() {
			assert.GreaterOrEqual(t, r.Value(m), 0.0)
		}
	}
}

func TestLoad_Deterministic(t *testing.T) {
	first, err := Load(context.Background(), fixture, Options{})
	require.NoError(t, err)
	second, err := Load(context.Background(), fixture, Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Records(), second.Records())
}

func TestLoad_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "Integrado.csv")

	ds, err := Load(context.Background(), missing, Options{})
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFileNotFound))
	assert.Contains(t, err.Error(), missing)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty file",
			content: "",
			want:    "vacío",
		},
		{
			name:    "missing required column",
			content: "Lote,Año,Producción\n88,2023,10\n",
			want:    "Tipo de Hidrocarburo",
		},
		{
			name:    "year without four digits",
			content: "Lote,Tipo de Hidrocarburo,Año\n88,Gas,n/a\n",
			want:    "línea 2",
		},
		{
			name:    "too many fields",
			content: "Lote,Tipo de Hidrocarburo,Año\n88,Gas,2023,extra\n",
			want:    "se esperaban 3 campos",
		},
		{
			name:    "broken quoting",
			content: "Lote,Tipo de Hidrocarburo,Año\n\"88,Gas,2023\n",
			want:    "CSV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), writeCSV(t, tt.content), Options{})
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeLoad), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ShortRowsAndAbsentColumns(t *testing.T) {
	path := writeCSV(t, "Lote,Tipo de Hidrocarburo,Año,Producción\n88,Gas,2023\n")

	ds, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	rec := ds.Records()[0]
	assert.Equal(t, 0.0, rec.Value(domain.MeasureProduction))
	assert.Equal(t, 0.0, rec.Value(domain.MeasureFee))
}

func TestRead_BOMAndEncodings(t *testing.T) {
	header := "Lote,Tipo de Hidrocarburo,Año,Producción\n"

	t.Run("utf-8 with BOM", func(t *testing.T) {
		records, err := Read(context.Background(), strings.NewReader("\ufeff"+header+"88,Petróleo,2023,10\n"), Options{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "88", records[0].Lote)
		assert.Equal(t, domain.HydrocarbonOil, records[0].Type)
	})

	t.Run("windows-1252", func(t *testing.T) {
		encoded, err := charmap.Windows1252.NewEncoder().String(header + "88,Petróleo,2023,10\n")
		require.NoError(t, err)

		records, err := Read(context.Background(), strings.NewReader(encoded), Options{Encoding: "windows-1252"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.HydrocarbonOil, records[0].Type)
		assert.Equal(t, 10.0, records[0].Value(domain.MeasureProduction))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Read(context.Background(), strings.NewReader(header), Options{Encoding: "ebcdic"})
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeLoad))
	})
}

func TestRead_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Read(ctx, strings.NewReader("Lote,Tipo de Hidrocarburo,Año\n88,Gas,2023\n"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDataset_HasLote(t *testing.T) {
	ds := New("mem", []domain.Record{{Lote: "88"}, {Lote: "56"}, {Lote: ""}})
	assert.True(t, ds.HasLote("88"))
	assert.False(t, ds.HasLote("ZZZ"))
	assert.Equal(t, []string{"56", "88"}, ds.Lotes())
}
