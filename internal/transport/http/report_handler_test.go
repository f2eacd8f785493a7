package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "upstreamcli/internal/errors"
	"upstreamcli/internal/services"
	"upstreamcli/pkg/contracts/domain"
)

// MockReportService is a mock implementation of ReportServiceInterface
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetReport(ctx context.Context, lote string) (*domain.Report, error) {
	args := m.Called(lote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) ListLotes(ctx context.Context) ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReportService) Export(ctx context.Context, lote string, format domain.ReportFormat, w io.Writer) error {
	args := m.Called(lote, format)
	if body := args.String(0); body != "" {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(1)
}

func (m *MockReportService) Reload(ctx context.Context) (services.DatasetInfo, error) {
	args := m.Called()
	return args.Get(0).(services.DatasetInfo), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestHandler(svc *MockReportService) http.Handler {
	logger := testLogger()
	return NewReportHandler(svc, logger, apierrors.NewErrorHandler(logger, false)).Routes()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestReportHandler_ListLotes(t *testing.T) {
	svc := new(MockReportService)
	svc.On("ListLotes").Return([]string{"56", "88"}, nil)

	rec := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lotes", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["count"])
	svc.AssertExpectations(t)
}

func TestReportHandler_GetReport(t *testing.T) {
	rep := &domain.Report{Lote: "88", Title: "Principales Cifras UPSTREAM por Lote - Perú"}

	tests := []struct {
		name       string
		target     string
		setup      func(svc *MockReportService)
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "json by query",
			target: "/report?lote=88",
			setup: func(svc *MockReportService) {
				svc.On("GetReport", "88").Return(rep, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				data := decode(t, rec)["data"].(map[string]interface{})
				assert.Equal(t, "88", data["lote"])
			},
		},
		{
			name:   "json by path",
			target: "/report/Z-1",
			setup: func(svc *MockReportService) {
				svc.On("GetReport", "Z-1").Return(rep, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "csv attachment",
			target: "/report?lote=88&format=csv",
			setup: func(svc *MockReportService) {
				svc.On("Export", "88", domain.ReportFormatCSV).Return("Lote,88\n", nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "upstream_lote_88.csv")
				assert.Equal(t, "Lote,88\n", rec.Body.String())
			},
		},
		{
			name:       "missing lote",
			target:     "/report",
			setup:      func(svc *MockReportService) {},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
				assert.Equal(t, "/errors/validation", decode(t, rec)["type"])
			},
		},
		{
			name:       "bad format",
			target:     "/report?lote=88&format=pdf",
			setup:      func(svc *MockReportService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "blank lote reaches builder",
			target: "/report?lote=%20",
			setup: func(svc *MockReportService) {
				svc.On("GetReport", " ").Return(nil, apierrors.NewMissingInputError("lote", "Por favor, ingresa un lote para continuar."))
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decode(t, rec)
				assert.Equal(t, apierrors.TypeMissingInput, body["type"])
				assert.Equal(t, "lote", body["field"])
			},
		},
		{
			name:   "dataset missing",
			target: "/report?lote=88&format=xlsx",
			setup: func(svc *MockReportService) {
				svc.On("Export", "88", domain.ReportFormatExcel).Return("", apierrors.NewFileNotFoundError("Integrado.csv", nil))
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decode(t, rec)
				assert.Equal(t, apierrors.TypeDataNotFound, body["type"])
				assert.Equal(t, "Integrado.csv", body["path"])
			},
		},
		{
			name:   "dataset corrupted",
			target: "/report/88",
			setup: func(svc *MockReportService) {
				svc.On("GetReport", "88").Return(nil, apierrors.NewLoadError("línea 3", nil))
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apierrors.TypeDataCorrupted, decode(t, rec)["type"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockReportService)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			newTestHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestReportHandler_Reload(t *testing.T) {
	svc := new(MockReportService)
	svc.On("Reload").Return(services.DatasetInfo{Source: "Integrado.csv", Records: 6, Lotes: 4}, nil)

	rec := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dataset/reload", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["records"])
	svc.AssertExpectations(t)
}
