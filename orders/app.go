package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/minimart/minimart/common/auth"
	"github.com/minimart/minimart/common/broker"
	"github.com/minimart/minimart/common/idgen"
	"github.com/minimart/minimart/common/logger"
	"github.com/minimart/minimart/common/metrics"
	"github.com/minimart/minimart/common/multiplex"
	"github.com/minimart/minimart/discovery"
	"github.com/minimart/minimart/discovery/consul"
)

type App struct {
	registry        discovery.Registry
	grpcServer      *grpc.Server
	httpServer      *http.Server
	channel         *amqp.Channel
	closeBroker     func() error
	db              *sql.DB
	localDB         *sql.DB
	instanceID      string
	config          Config
	logger          *slog.Logger
	httpMetrics     *metrics.HTTPMetrics
	grpcMetrics     *metrics.GRPCMetrics
	businessMetrics *metrics.BusinessMetrics
}

type Config struct {
	ServiceName      string
	InstanceID       string
	HTTPAddr         string
	ConsulAddr       string
	JWTSecret        string
	WorkerID         int64
	InventoryService string
	AMQPUser         string
	AMQPPass         string
	AMQPHost         string
	AMQPPort         string
}

// NewApp wires the long-lived pieces: registry, broker channel,
// metrics, gRPC server. The db pools come from main; the primary
// serves the request path, the local one serves the reconciler.
func NewApp(config Config, db, localDB *sql.DB) (*App, error) {
	log := logger.NewLogger(config.ServiceName)

	registry, err := consul.NewRegistry(config.ConsulAddr)
	if err != nil {
		return nil, err
	}

	// The broker is best effort. Without it the fleet still settles
	// orders, it just emits no order.settled events.
	ch, closeBroker, err := broker.Connect(config.AMQPUser, config.AMQPPass, config.AMQPHost, config.AMQPPort)
	if err != nil {
		log.Warn("rabbitmq unavailable, settlement events disabled", slog.Any("error", err))
		ch, closeBroker = nil, nil
	} else {
		log.Info("rabbitmq connected",
			slog.String("host", config.AMQPHost),
			slog.String("port", config.AMQPPort),
		)
	}

	instanceID := config.InstanceID
	if instanceID == "" {
		instanceID = discovery.GenerateInstanceID(config.ServiceName)
	}

	return &App{
		registry:        registry,
		grpcServer:      grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler())),
		channel:         ch,
		closeBroker:     closeBroker,
		db:              db,
		localDB:         localDB,
		instanceID:      instanceID,
		config:          config,
		logger:          log,
		httpMetrics:     metrics.NewHTTPMetrics("orders"),
		grpcMetrics:     metrics.NewGRPCMetrics("orders"),
		businessMetrics: metrics.NewBusinessMetrics("orders"),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	// 1. Schema, then stores: request path on the primary pool, the
	// reconciler on the local one.
	store := NewStore(a.db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	localStore := NewStore(a.localDB)

	// 2. Register with service discovery.
	host, portStr, err := net.SplitHostPort(a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("invalid HTTP_ADDR %q: %w", a.config.HTTPAddr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid HTTP_ADDR port %q: %w", portStr, err)
	}
	if err := a.registry.Register(ctx, discovery.Registration{
		ID:        a.instanceID,
		Name:      a.config.ServiceName,
		Tags:      []string{"orders"},
		Address:   host,
		Port:      port,
		HealthURL: fmt.Sprintf("http://%s/health_check", a.config.HTTPAddr),
	}); err != nil {
		return fmt.Errorf("failed to register with consul: %w", err)
	}

	// 3. Business logic and its collaborators.
	tokens, err := idgen.NewGenerator(a.config.WorkerID)
	if err != nil {
		return fmt.Errorf("failed to create token generator: %w", err)
	}
	inventoryClient := NewInventoryClient(a.registry, a.config.InventoryService)
	svc := NewService(store, inventoryClient, tokens, a.channel, a.businessMetrics, a.logger)
	svcWithTelemetry := NewTelemetryMiddleware(svc)

	// 4. Both server surfaces on the one port.
	NewGRPCHandler(a.grpcServer, svcWithTelemetry, a.logger, a.grpcMetrics)

	tokenManager := auth.NewTokenManager([]byte(a.config.JWTSecret))
	mux := http.NewServeMux()
	NewHTTPHandler(svcWithTelemetry, a.logger).registerRoutes(mux, auth.Middleware(tokenManager))
	mux.Handle("GET /metrics", promhttp.Handler())

	a.httpServer = &http.Server{
		Addr:    a.config.HTTPAddr,
		Handler: multiplex.Handler(a.httpMetrics.Middleware(mux), a.grpcServer),
	}

	// 5. The reconciler sweeps the outbox until shutdown.
	go NewReconciler(localStore, svc, a.businessMetrics, a.logger).Run(ctx)

	a.logger.Info("starting server",
		slog.String("addr", a.config.HTTPAddr),
		slog.String("instance_id", a.instanceID),
	)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down gracefully")

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.logger.Error("error shutting down http server", slog.Any("error", err))
		}
	}
	a.grpcServer.GracefulStop()

	if a.closeBroker != nil {
		if err := a.closeBroker(); err != nil {
			a.logger.Error("error closing rabbitmq", slog.Any("error", err))
		}
	}

	return a.registry.Deregister(ctx, a.instanceID)
}
