package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/character/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
	"github.com/KirkDiggler/rpg-sheet/internal/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the rpg-sheet gRPC server with the configured storage, stats cache and tracing.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
}

func runServer(cmd *cobra.Command, _ []string) error {
	v := config.NewViper()
	if err := v.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		return errors.Wrap(err, "failed to bind port flag")
	}
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", cfg.Server.Addr())
	}

	srv := newGRPCServer(logger, a.handler)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		gracefulStop(srv, cfg.Server.ShutdownTimeout, logger)
		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer registers the character, health and reflection services
// behind tracing, logging and panic recovery
func newGRPCServer(logger *slog.Logger, handler v1alpha1.CharacterServiceServer) *grpc.Server {
	interceptorLogger := logging.InterceptorLogger(logger)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterCharacterServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

func gracefulStop(srv *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}
