package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upstreamcli/internal/config"
	"upstreamcli/internal/infrastructure"
)

func newTestApp(t *testing.T, dataFile string) *Application {
	t.Helper()

	cfg := config.Default()
	cfg.Data.File = dataFile
	cfg.Security.RateLimit.Enabled = false

	logger, err := infrastructure.NewLogger(cfg.Logging, io.Discard)
	require.NoError(t, err)

	app, err := NewApplicationWithConfig(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = app.OTelProviders.Shutdown(context.Background())
	})
	return app
}

func fixture(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "dataset", "testdata", "integrado.csv"))
	require.NoError(t, err)
	return p
}

func get(t *testing.T, app *Application, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestApplication_Routes(t *testing.T) {
	app := newTestApp(t, fixture(t))

	tests := []struct {
		path   string
		status int
	}{
		{"/api/health", http.StatusOK},
		{"/api/health/live", http.StatusOK},
		{"/api/health/ready", http.StatusOK},
		{"/api/version", http.StatusOK},
		{"/api/lotes", http.StatusOK},
		{"/api/report/88", http.StatusOK},
		{"/api/report?lote=88&format=csv", http.StatusOK},
		{"/api/report", http.StatusBadRequest},
		{"/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, app, tt.path)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestApplication_Lotes(t *testing.T) {
	app := newTestApp(t, fixture(t))

	rec := get(t, app, "/api/lotes")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string   `json:"status"`
		Data   []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, []string{"56", "88", "X", "Z-1"}, body.Data)
}

func TestApplication_MissingData(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "missing.csv"))

	rec := get(t, app, "/api/report/88")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/errors/data/not-found")

	rec = get(t, app, "/api/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApplication_Metrics(t *testing.T) {
	app := newTestApp(t, fixture(t))

	get(t, app, "/api/report/88")
	rec := get(t, app, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "report_builds_total")
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestApplication_Stop(t *testing.T) {
	app := newTestApp(t, fixture(t))
	require.NoError(t, app.Stop(context.Background()))
}
