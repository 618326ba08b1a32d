package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-advisor/internal/service"
	"github.com/MKhiriev/go-finance-advisor/models"
)

func TestRootAndInfo(t *testing.T) {
	deps := newTestDeps()
	deps.appInfo.root = models.RootResponse{
		Message:  "Finance Advisor API",
		Version:  "1.2.3",
		Status:   "healthy",
		Database: "connected",
		Health:   "/health",
		Features: []string{"JWT Authentication"},
	}
	deps.appInfo.info = models.InfoResponse{
		Application: models.ApplicationInfo{Name: "Finance Advisor API", Version: "1.2.3", Environment: "test"},
		Endpoints:   map[string]string{"health": "/health"},
	}
	router := deps.router()

	rec := do(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"features":["JWT Authentication"]`)

	rec = do(t, router, http.MethodGet, "/info/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"environment":"test"`)
}

func TestHealth(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		rec := do(t, newTestDeps().router(), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","database":"connected"}`, rec.Body.String())
	})

	t.Run("unavailable", func(t *testing.T) {
		deps := newTestDeps()
		deps.health.checkFn = func(context.Context) (models.DatabaseHealth, error) {
			return models.DatabaseHealth{Status: "error", Database: "unavailable", Detail: "connection refused"}, service.ErrDatabaseUnavailable
		}

		rec := do(t, deps.router(), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"error","database":"unavailable","detail":"connection refused"}`, rec.Body.String())
	})
}

func TestGetServerVersion(t *testing.T) {
	rec := do(t, newTestDeps().router(), http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestDeps().router()

	do(t, router, http.MethodGet, "/api/version", "")
	rec := do(t, router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `finance_api_http_requests_total{method="GET",route="/api/version",status="200"} 1`)
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	deps := newTestDeps()
	deps.metrics = nil

	rec := do(t, deps.router(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
