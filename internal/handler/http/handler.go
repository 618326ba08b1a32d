package http

import (
	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
	"github.com/MKhiriev/go-finance-advisor/internal/ratelimit"
	"github.com/MKhiriev/go-finance-advisor/internal/service"
	"github.com/MKhiriev/go-finance-advisor/internal/validators"
)

type Handler struct {
	services *service.Services

	// limiter is nil when rate limiting is disabled.
	limiter ratelimit.Store
	metrics *metrics.Metrics

	validator validators.Validator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Store, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		limiter:   limiter,
		metrics:   m,
		validator: validators.NewRequestValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}
