package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/handler"
	"github.com/MKhiriev/jobwise/internal/logger"
)

// transport is one listener managed by server.
type transport interface {
	Server
	Kind() string
	Addr() string
}

type server struct {
	transports []transport
	grpc       *grpcServer

	logger *logger.Logger
}

// NewServer builds a transport for every configured address that has a
// handler. At least one must result.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.grpc = g
		s.transports = append(s.transports, g)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

// RunServer serves until SIGINT, SIGTERM or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	s.serve(ctx)
}

// Shutdown stops all transports concurrently.
func (s *server) Shutdown() {
	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		go func(t transport) {
			defer wg.Done()
			t.Shutdown()
			s.logger.Info().Str("transport", t.Kind()).Msg("transport stopped")
		}(t)
	}
	wg.Wait()
}

// serve starts every transport and returns once ctx is done and all of them
// have stopped.
func (s *server) serve(ctx context.Context) {
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.Kind()).Str("address", t.Addr()).Msg("listening")
		go t.RunServer()
	}

	<-ctx.Done()
	s.logger.Info().Msg("shutting down")
	s.Shutdown()
}
