package grpcapi

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// TeamServiceName is the service name reported through grpc.health.v1.
const TeamServiceName = "football.TeamService"

type HealthServer struct {
	server *health.Server
}

// RegisterHealthServer registers grpc.health.v1.Health on s, initially NOT_SERVING.
func RegisterHealthServer(s *grpc.Server) *HealthServer {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv.SetServingStatus(TeamServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, srv)
	return &HealthServer{server: srv}
}

func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(TeamServiceName, status)
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *HealthServer) Shutdown() {
	h.server.Shutdown()
}
