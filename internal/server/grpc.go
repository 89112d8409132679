package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/jobwise/internal/config"
	healthHandler "github.com/MKhiriev/jobwise/internal/handler/grpc"
	"github.com/MKhiriev/jobwise/internal/logger"

	"google.golang.org/grpc"
)

// grpcServer serves the health service. The listener is opened eagerly so a
// bad address fails at startup.
type grpcServer struct {
	handler  *healthHandler.Handler
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *healthHandler.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errListenGRPC, cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging))
	handler.Register(srv)

	return &grpcServer{handler: handler, server: srv, listener: listener, logger: logger}, nil
}

func (g *grpcServer) Kind() string { return "grpc" }

func (g *grpcServer) Addr() string { return g.listener.Addr().String() }

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Err(err).Msg("gRPC serve failed")
	}
}

// Shutdown reports NOT_SERVING before draining in-flight calls.
func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
}
