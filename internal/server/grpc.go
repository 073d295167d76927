package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// grpcServer exposes the standard gRPC health-checking protocol
// (grpc.health.v1) alongside the HTTP bridge, so infrastructure probes can
// watch the daemon without speaking the REST API.
type grpcServer struct {
	server          *grpc.Server
	healthService   *health.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errStartingGRPCListener, err)
	}

	server := grpc.NewServer()
	healthService := health.NewServer()
	healthService.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthService)

	return &grpcServer{
		server:          server,
		healthService:   healthService,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	// flip every watcher to NOT_SERVING before connections drain
	g.healthService.Shutdown()
	g.server.GracefulStop()
}
