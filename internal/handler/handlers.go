package handler

import (
	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/handler/grpc"
	"github.com/MKhiriev/go-finance-advisor/internal/handler/http"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
	"github.com/MKhiriev/go-finance-advisor/internal/ratelimit"
	"github.com/MKhiriev/go-finance-advisor/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured address. limiter may be nil
// when rate limiting is disabled.
func NewHandlers(services *service.Services, limiter ratelimit.Store, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, m, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
