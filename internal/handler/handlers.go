package handler

import (
	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/handler/grpc"
	"github.com/MKhiriev/jobwise/internal/handler/http"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	var h Handlers
	if cfg.HTTPAddress != "" {
		h.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" {
		h.GRPC = grpc.NewHandler(services, logger)
	}
	if h.HTTP == nil && h.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Debug().Bool("http", h.HTTP != nil).Bool("grpc", h.GRPC != nil).Msg("handlers created")
	return &h, nil
}
