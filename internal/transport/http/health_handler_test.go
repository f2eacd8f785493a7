package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"upstreamcli/internal/services"
)

// MockHealthService is a mock implementation of HealthServiceInterface
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) HealthCheck(ctx context.Context) services.HealthStatus {
	return m.Called().Get(0).(services.HealthStatus)
}

func (m *MockHealthService) ReadinessCheck(ctx context.Context) services.HealthStatus {
	return m.Called().Get(0).(services.HealthStatus)
}

func (m *MockHealthService) LivenessCheck(ctx context.Context) services.HealthStatus {
	return m.Called().Get(0).(services.HealthStatus)
}

func (m *MockHealthService) Version() map[string]interface{} {
	return m.Called().Get(0).(map[string]interface{})
}

func TestHealthHandler(t *testing.T) {
	now := time.Now()
	svc := new(MockHealthService)
	svc.On("HealthCheck").Return(services.HealthStatus{Status: "ok", Timestamp: now})
	svc.On("LivenessCheck").Return(services.HealthStatus{Status: "alive", Timestamp: now})
	svc.On("Version").Return(map[string]interface{}{"version": "1.0.0"})

	h := NewHealthHandler(svc, testLogger())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"health", h.HealthCheck, `"status":"ok"`},
		{"liveness", h.LivenessCheck, `"status":"alive"`},
		{"version", h.Version, `"version":"1.0.0"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ready := new(MockHealthService)
	ready.On("ReadinessCheck").Return(services.HealthStatus{Status: "ready"})
	rec := httptest.NewRecorder()
	NewHealthHandler(ready, testLogger()).ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	notReady := new(MockHealthService)
	notReady.On("ReadinessCheck").Return(services.HealthStatus{Status: "not_ready"})
	rec = httptest.NewRecorder()
	NewHealthHandler(notReady, testLogger()).ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
