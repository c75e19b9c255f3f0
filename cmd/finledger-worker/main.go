package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"finledger/internal/amqp"
	"finledger/internal/backend"
	"finledger/internal/catalog"
	"finledger/internal/config"
	applog "finledger/internal/log"
	"finledger/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	logger.Info("Starting finledger-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the export worker")
		os.Exit(1)
	}

	// The worker reads record state from the same backend the server
	// mutates. Events from the server's own publisher are not re-published
	// here.
	workerCfg := *cfg
	workerCfg.AMQPURL = ""
	result, err := backend.New(&workerCfg, catalog.Default(), nil, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer result.Cleanup()

	if cfg.DataBackend != "sqlite" {
		logger.Warn("Export worker only sees records persisted by its own backend", "backend", cfg.DataBackend)
	}

	exporter := worker.NewExportWorker(result.Ledger, cfg.ExportPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	amqpLog := logger.WithComponent(applog.ComponentAMQP)
	amqpLog.Info("Consuming transaction events",
		"queue", cfg.AMQPQueue,
		"export_path", cfg.ExportPath)

	err = amqp.Consume(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, func(msg *amqp.TransactionEventMessage) error {
		return exporter.HandleEvent(ctx, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
