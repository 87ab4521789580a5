package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"

	"github.com/minimart/minimart/common/config"
	"github.com/minimart/minimart/common/logger"
	"github.com/minimart/minimart/common/tracing"
)

func main() {
	cfg := Config{
		ServiceName:      config.GetEnv("SERVICE_NAME", "order-srv"),
		InstanceID:       config.GetEnv("INSTANCE_ID", ""),
		HTTPAddr:         config.GetEnv("HTTP_ADDR", "127.0.0.1:3002"),
		ConsulAddr:       config.GetEnv("CONSUL_ADDR", "127.0.0.1:8500"),
		JWTSecret:        config.MustGetEnv("JWT_SECRET"),
		WorkerID:         config.GetEnvInt64("WORKER_ID", 1),
		InventoryService: config.GetEnv("INVENTORY_SRV", "inventory-srv"),
		AMQPUser:         config.GetEnv("AMQP_USER", "guest"),
		AMQPPass:         config.GetEnv("AMQP_PASS", "guest"),
		AMQPHost:         config.GetEnv("AMQP_HOST", "localhost"),
		AMQPPort:         config.GetEnv("AMQP_PORT", "5672"),
	}
	databaseURL := config.MustGetEnv("DATABASE_URL")
	localDatabaseURL := config.GetEnv("DATABASE_URL_LOCAL", databaseURL)

	log := logger.NewLogger(cfg.ServiceName)
	log.Info("starting service",
		slog.String("instance_id", cfg.InstanceID),
		slog.String("http_addr", cfg.HTTPAddr),
	)

	shutdownTracer, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		log.Error("failed to initialize tracer", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdownTracer()

	db, err := openPostgres(databaseURL)
	if err != nil {
		log.Error("failed to connect to postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// A second pool for the reconciler keeps its sweeps off the
	// request path's connections. Same schema either way.
	localDB := db
	if localDatabaseURL != databaseURL {
		localDB, err = openPostgres(localDatabaseURL)
		if err != nil {
			log.Error("failed to connect to local postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer localDB.Close()
	}

	app, err := NewApp(cfg, db, localDB)
	if err != nil {
		log.Error("failed to create app", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("received shutdown signal")
		if err := app.Shutdown(ctx); err != nil {
			log.Error("error during shutdown", slog.Any("error", err))
		}
		cancel()
	}()

	if err := app.Start(ctx); err != nil {
		log.Error("failed to start app", slog.Any("error", err))
		os.Exit(1)
	}
}

func openPostgres(connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
