package service

import (
	"context"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/models"
)

const (
	statusDegraded = "degraded"

	databaseConnected    = "connected"
	databaseDisconnected = "disconnected"
)

type appInfoService struct {
	app         config.App
	rateLimited bool
	database    store.Database

	logger *logger.Logger
}

func NewAppInfoService(cfg config.StructuredConfig, database store.Database, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		app:         cfg.App,
		rateLimited: cfg.RateLimit.IsEnabled(),
		database:    database,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.app.Version
}

// GetRoot reports a degraded status while the database does not answer.
func (s *appInfoService) GetRoot(ctx context.Context) models.RootResponse {
	status, database := StatusHealthy, databaseConnected
	if err := s.database.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database is not reachable")
		status, database = statusDegraded, databaseDisconnected
	}

	return models.RootResponse{
		Message:  s.app.Name,
		Version:  s.app.Version,
		Status:   status,
		Database: database,
		Health:   "/health",
		Metrics:  "/metrics",
		Features: s.features(ctx),
	}
}

func (s *appInfoService) GetInfo(ctx context.Context) models.InfoResponse {
	return models.InfoResponse{
		Application: models.ApplicationInfo{
			Name:        s.app.Name,
			Version:     s.app.Version,
			Environment: s.app.Environment,
		},
		Database: s.database.Info(ctx),
		Features: map[string]bool{
			"ai_advisor":      true,
			"user_management": true,
			"todo_system":     true,
			"jwt_auth":        true,
			"rate_limiting":   s.rateLimited,
		},
		Endpoints: map[string]string{
			"health":  "/health",
			"info":    "/info",
			"metrics": "/metrics",
			"version": "/api/version",
		},
	}
}

func (s *appInfoService) features(ctx context.Context) []string {
	database := "SQLite Database"
	if s.database.Info(ctx).Type == config.DialectPostgres {
		database = "PostgreSQL Database"
	}

	features := []string{
		"AI Financial Advisor",
		"User Management",
		"Todo Management",
		"JWT Authentication",
		database,
	}
	if s.rateLimited {
		features = append(features, "Rate Limiting")
	}
	return append(features, "CORS Support")
}
