// grpc собирает gRPC-сервер relief-board: health-проверки
// (grpc.health.v1) за цепочкой интерсепторов и метриками grpc_prometheus.
package grpc

import (
	"log/slog"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/transport/grpc/interceptors"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Options — параметры сборки сервера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Reflection включает grpc reflection (local/dev).
	Reflection bool
}

// Server — gRPC-сервер и управляемый им health-статус.
type Server struct {
	GRPC   *grpc.Server
	Health *health.Server
}

// NewServer создаёт сервер с цепочкой Recover -> Logging -> Timeout -> prometheus
// и зарегистрированным health-сервисом в статусе NOT_SERVING.
func NewServer(opts Options) *Server {
	grpc_prometheus.EnableHandlingTimeHistogram()

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.Recover(opts.Logger),
			interceptors.UnaryLogging(opts.Logger),
			interceptors.WithTimeout(opts.Timeout),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	if opts.Reflection {
		reflection.Register(srv)
	}

	grpc_prometheus.Register(srv)

	return &Server{GRPC: srv, Health: hs}
}

// SetReady переключает общий health-статус сервера.
func (s *Server) SetReady(ready bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		st = healthpb.HealthCheckResponse_SERVING
	}

	s.Health.SetServingStatus("", st)
}
