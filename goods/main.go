package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minimart/minimart/common/config"
	"github.com/minimart/minimart/common/logger"
	"github.com/minimart/minimart/common/metrics"
	"github.com/minimart/minimart/common/tracing"
	"github.com/minimart/minimart/discovery"
	"github.com/minimart/minimart/discovery/consul"
)

var (
	serviceName      = "goods-srv"
	httpAddr         = config.GetEnv("HTTP_ADDR", "127.0.0.1:3004")
	consulAddr       = config.GetEnv("CONSUL_ADDR", "127.0.0.1:8500")
	mongoURI         = config.GetEnv("MONGO_URI", "mongodb://127.0.0.1:27017")
	inventoryService = config.GetEnv("INVENTORY_SRV", "inventory-srv")
)

func main() {
	log := logger.NewLogger(serviceName)

	shutdownTracer, err := tracing.InitTracer(serviceName)
	if err != nil {
		log.Error("failed to initialize tracer", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdownTracer()

	mongoClient, err := connectToMongoDB(mongoURI)
	if err != nil {
		log.Error("failed to connect to mongodb", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Error("failed to disconnect from mongodb", slog.Any("error", err))
		}
	}()

	log.Info("connected to mongodb")

	registry, err := consul.NewRegistry(consulAddr)
	if err != nil {
		log.Error("failed to create registry", slog.Any("error", err))
		os.Exit(1)
	}

	host, portStr, err := net.SplitHostPort(httpAddr)
	if err != nil {
		log.Error("invalid HTTP_ADDR", slog.String("addr", httpAddr), slog.Any("error", err))
		os.Exit(1)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Error("invalid HTTP_ADDR port", slog.String("addr", httpAddr), slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	instanceID := config.GetEnv("INSTANCE_ID", discovery.GenerateInstanceID(serviceName))
	if err := registry.Register(ctx, discovery.Registration{
		ID:        instanceID,
		Name:      serviceName,
		Tags:      []string{"goods"},
		Address:   host,
		Port:      port,
		HealthURL: fmt.Sprintf("http://%s/health_check", httpAddr),
	}); err != nil {
		log.Error("failed to register with consul", slog.Any("error", err))
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics("goods")

	svc := NewService(NewStore(mongoClient), NewInventoryClient(registry, inventoryService), log)

	mux := http.NewServeMux()
	NewHTTPHandler(svc, log).registerRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    httpAddr,
		Handler: httpMetrics.Middleware(permissiveCORS(mux)),
	}

	go func() {
		log.Info("starting server", slog.String("addr", httpAddr), slog.String("instance_id", instanceID))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}

	if err := registry.Deregister(shutdownCtx, instanceID); err != nil {
		log.Error("failed to deregister", slog.Any("error", err))
	}
}

func connectToMongoDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
