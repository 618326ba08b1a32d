package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
)

// Health service names reported next to the overall "" service.
const (
	ServiceOverall  = ""
	ServiceDatabase = "database"
	ServiceLLM      = "llm"

	// ServiceRedis is reported only when the rate limiter runs on Redis.
	ServiceRedis = "redis"
)

// Handler is the root gRPC transport handler.
//
// It exposes the standard gRPC health checking protocol. Statuses start as
// NOT_SERVING and are flipped by the health probe worker through
// [Handler.SetServingStatus].
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with every known service marked
// NOT_SERVING until the first probe.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	for _, service := range []string{ServiceOverall, ServiceDatabase, ServiceLLM} {
		h.health.SetServingStatus(service, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServingStatus marks service as SERVING or NOT_SERVING.
func (h *Handler) SetServingStatus(service string, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(service, status)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
