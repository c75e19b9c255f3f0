// Package backend selects and wires a ledger implementation from
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"finledger/internal/amqp"
	"finledger/internal/catalog"
	"finledger/internal/config"
	"finledger/internal/core"
	"finledger/internal/ledger"
	"finledger/internal/services"
	"finledger/internal/storage"
)

// BackendType represents the type of ledger backend.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
)

func (t BackendType) IsValid() bool {
	return t == MemoryBackend || t == SQLiteBackend
}

// CleanupFunc releases resources owned by a backend.
type CleanupFunc func() error

// Result contains the ledger instance and its cleanup function.
type Result struct {
	Ledger  ledger.Ledger
	Cleanup CleanupFunc
}

// New builds the ledger backend described by cfg, validating against cat.
// Seed is only used by the memory backend. When an AMQP URL is configured
// the backend is wrapped in a LedgerService that publishes mutation
// events.
func New(cfg *config.Config, cat *catalog.Catalog, seed []core.Transaction, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	typ := BackendType(cfg.DataBackend)
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	var (
		store   ledger.Ledger
		cleanup CleanupFunc = func() error { return nil }
	)
	switch typ {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath, cat)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		store, cleanup = repo, repo.Close
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
	default:
		store = ledger.NewStore(cat, seed)
		logger.Info("Initialized memory backend", "seed_records", len(seed))
	}

	if cfg.AMQPURL == "" {
		return &Result{Ledger: store, Cleanup: cleanup}, nil
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("initialize AMQP client: %w", err)
	}
	logger.Info("Event publishing enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)

	storeCleanup := cleanup
	return &Result{
		Ledger: services.NewLedgerService(store, amqpClient),
		Cleanup: func() error {
			amqpClient.Close()
			return storeCleanup()
		},
	}, nil
}
