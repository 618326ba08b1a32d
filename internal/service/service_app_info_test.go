package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/mock"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func appConfig(version string) config.StructuredConfig {
	return config.StructuredConfig{App: config.App{
		Name:        "Finance Advisor API",
		Version:     version,
		Environment: "test",
	}}
}

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(appConfig("1.0.0"), nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(appConfig(""), nil, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(appConfig("3.1.4"), nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(appConfig("1.0.0"), nil, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// GetRoot / GetInfo
// ─────────────────────────────────────────────

func TestGetRoot_Healthy(t *testing.T) {
	db := mock.NewMockDatabase(gomock.NewController(t))
	db.EXPECT().Ping(gomock.Any()).Return(nil)
	db.EXPECT().Info(gomock.Any()).Return(models.DatabaseInfo{Type: config.DialectPostgres})

	svc, err := NewAppInfoService(appConfig("1.0.0"), db, logger.Nop())
	require.NoError(t, err)

	root := svc.GetRoot(context.Background())

	assert.Equal(t, "Finance Advisor API", root.Message)
	assert.Equal(t, StatusHealthy, root.Status)
	assert.Equal(t, "connected", root.Database)
	assert.Equal(t, "/health", root.Health)
	assert.Contains(t, root.Features, "PostgreSQL Database")
	assert.Contains(t, root.Features, "Rate Limiting")
}

func TestGetRoot_DatabaseDown(t *testing.T) {
	db := mock.NewMockDatabase(gomock.NewController(t))
	db.EXPECT().Ping(gomock.Any()).Return(errors.New("refused"))
	db.EXPECT().Info(gomock.Any()).Return(models.DatabaseInfo{Type: config.DialectSQLite})

	disabled := false
	cfg := appConfig("1.0.0")
	cfg.RateLimit.Enabled = &disabled

	svc, err := NewAppInfoService(cfg, db, logger.Nop())
	require.NoError(t, err)

	root := svc.GetRoot(context.Background())

	assert.Equal(t, "degraded", root.Status)
	assert.Equal(t, "disconnected", root.Database)
	assert.Contains(t, root.Features, "SQLite Database")
	assert.NotContains(t, root.Features, "Rate Limiting")
}

func TestGetInfo(t *testing.T) {
	db := mock.NewMockDatabase(gomock.NewController(t))
	dbInfo := models.DatabaseInfo{Type: config.DialectSQLite, URL: "sqlite:///./finance_app.db"}
	db.EXPECT().Info(gomock.Any()).Return(dbInfo)

	svc, err := NewAppInfoService(appConfig("2.0.0"), db, logger.Nop())
	require.NoError(t, err)

	info := svc.GetInfo(context.Background())

	assert.Equal(t, models.ApplicationInfo{Name: "Finance Advisor API", Version: "2.0.0", Environment: "test"}, info.Application)
	assert.Equal(t, dbInfo, info.Database)
	assert.True(t, info.Features["rate_limiting"])
	assert.Equal(t, "/api/version", info.Endpoints["version"])
}
