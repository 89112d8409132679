// Package grpc exposes the gRPC side of the server: the standard health
// checking service plus a logging interceptor.
package grpc

import (
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported by the health endpoint.
const ServiceName = "jobwise"

// Handler is the root gRPC transport handler.
//
// It owns the health server and the structured logger shared by gRPC
// interceptors. A handler instance is created once at startup and shared by
// the gRPC server.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler builds a [Handler] whose health server reports SERVING for both
// [ServiceName] and the overall server ("").
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING. Watchers are notified and
// later status updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Info().Str("service", ServiceName).Msg("health status set to NOT_SERVING")
	h.health.Shutdown()
}
