package main

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finledger/internal/backend"
	"finledger/internal/cache"
	"finledger/internal/catalog"
	"finledger/internal/config"
	apphttp "finledger/internal/http"
	applog "finledger/internal/log"
	"finledger/internal/report"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.CategoriesDir != "" {
		cat = catalog.NewFromFiles(cfg.CategoriesDir)
		logger.Info("Loaded category catalog from seed files", "dir", cfg.CategoriesDir)
	}

	result, err := backend.New(cfg, cat, nil, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer result.Cleanup()

	reports := cache.NewLRU[report.Summary](cfg.ReportCacheSize, cfg.ReportCacheTTL)
	janitor := cache.NewJanitor(time.Minute)
	janitor.Register(reports)

	srv := apphttp.NewServer(":"+cfg.Port, result.Ledger, cat, reports)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := janitor.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	httpLog := logger.WithComponent(applog.ComponentHTTP)
	g.Go(func() error {
		httpLog.Info("Starting finledger server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
