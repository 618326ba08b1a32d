package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/models"
)

type healthService struct {
	database store.Database

	logger *logger.Logger
}

func NewHealthService(database store.Database, logger *logger.Logger) HealthService {
	return &healthService{database: database, logger: logger}
}

func (s *healthService) CheckDatabase(ctx context.Context) (models.DatabaseHealth, error) {
	if err := s.database.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database health check failed")
		return models.DatabaseHealth{
			Status:   "error",
			Database: "unavailable",
			Detail:   err.Error(),
		}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return models.DatabaseHealth{Status: "ok", Database: databaseConnected}, nil
}
