package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/minimart/minimart/common/config"
	"github.com/minimart/minimart/common/metrics"
	"github.com/minimart/minimart/common/multiplex"
	"github.com/minimart/minimart/common/tracing"
	"github.com/minimart/minimart/discovery"
	"github.com/minimart/minimart/discovery/consul"
)

var (
	serviceName = "inventory-srv"
	httpAddr    = config.GetEnv("HTTP_ADDR", "127.0.0.1:3001")
	consulAddr  = config.GetEnv("CONSUL_ADDR", "127.0.0.1:8500")
	databaseURL = config.MustGetEnv("DATABASE_URL")
	redisAddr   = config.GetEnv("REDIS_ADDR", "localhost:6379")
	redisTTL    = config.GetEnvDuration("REDIS_TTL", 5*time.Minute)
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	shutdownTracer, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Fatal("failed to initialize tracer", zap.Error(err))
	}
	defer shutdownTracer()

	store, err := NewPostgresStore(databaseURL)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("connected to postgres")

	cache, err := NewInventoryCache(redisAddr, redisTTL)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer cache.Close()

	logger.Info("connected to redis", zap.String("addr", redisAddr), zap.Duration("ttl", redisTTL))

	cachedStore := NewCachedStore(store, cache)

	registry, err := consul.NewRegistry(consulAddr)
	if err != nil {
		logger.Fatal("failed to create registry", zap.Error(err))
	}

	host, portStr, err := net.SplitHostPort(httpAddr)
	if err != nil {
		logger.Fatal("invalid HTTP_ADDR", zap.String("addr", httpAddr), zap.Error(err))
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		logger.Fatal("invalid HTTP_ADDR port", zap.String("addr", httpAddr), zap.Error(err))
	}

	ctx := context.Background()
	instanceID := config.GetEnv("INSTANCE_ID", discovery.GenerateInstanceID(serviceName))
	if err := registry.Register(ctx, discovery.Registration{
		ID:        instanceID,
		Name:      serviceName,
		Tags:      []string{"inventory"},
		Address:   host,
		Port:      port,
		HealthURL: fmt.Sprintf("http://%s/health_check", httpAddr),
	}); err != nil {
		logger.Fatal("failed to register with consul", zap.Error(err))
	}

	httpMetrics := metrics.NewHTTPMetrics("inventory")
	grpcMetrics := metrics.NewGRPCMetrics("inventory")
	businessMetrics := metrics.NewBusinessMetrics("inventory")

	svc := NewService(cachedStore)
	svcWithTelemetry := NewTelemetryMiddleware(svc)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	NewGRPCHandler(grpcServer, svcWithTelemetry, grpcMetrics, businessMetrics)

	mux := http.NewServeMux()
	NewHTTPHandler(svcWithTelemetry).registerRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// REST and gRPC share the one port; the demultiplexer splits them
	// by protocol signature.
	server := &http.Server{
		Addr:    httpAddr,
		Handler: multiplex.Handler(httpMetrics.Middleware(mux), grpcServer),
	}

	go func() {
		logger.Info("starting server", zap.String("addr", httpAddr), zap.String("instance_id", instanceID))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()

	if err := registry.Deregister(shutdownCtx, instanceID); err != nil {
		logger.Error("failed to deregister", zap.Error(err))
	}
}
