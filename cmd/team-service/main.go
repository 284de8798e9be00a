package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/LavaJover/football-team-service/internal/app/background"
	"github.com/LavaJover/football-team-service/internal/app/setup"
	"github.com/LavaJover/football-team-service/internal/config"
	"github.com/LavaJover/football-team-service/internal/delivery/grpcapi"
	"github.com/LavaJover/football-team-service/internal/delivery/http/handlers"
	"github.com/LavaJover/football-team-service/internal/delivery/http/router"
	"github.com/LavaJover/football-team-service/internal/infrastructure/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	appLogger, closeLog, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer closeLog()
	slog.SetDefault(appLogger.With(slog.String("service", "team-service"), slog.String("env", cfg.Env)))

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	ucs := setup.InitializeUseCases(deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// gRPC (health only)
	grpcServer := grpc.NewServer()
	healthServer := grpcapi.RegisterHealthServer(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCServer.Address())
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	go func() {
		slog.Info("gRPC server started", "addr", cfg.GRPCServer.Address())
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server stopped", "error", err.Error())
		}
	}()

	// HTTP
	routerCfg := router.Config{
		Logger:  slog.Default(),
		Metrics: deps.Metrics,
	}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsHandler = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
	}
	httpServer := &http.Server{
		Addr: cfg.HTTPServer.Address(),
		Handler: router.New(routerCfg,
			handlers.NewTeamHandler(ucs.TeamUsecase),
			handlers.NewHealthHandler(deps.SQLDB),
		),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}
	go func() {
		slog.Info("HTTP server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err.Error())
			stop()
		}
	}()

	background.NewBackgroundTasks(deps.Stats, deps.Metrics, deps.SQLDB, healthServer).StartAll(ctx)

	<-ctx.Done()
	slog.Info("shutting down")

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err.Error())
	}
	grpcServer.GracefulStop()

	// let in-flight transfer events reach kafka before the publisher closes
	ucs.TeamUsecase.Wait()
	slog.Info("stopped")
}
