// Package services orchestrates ledger mutations with outbound event
// publishing.
package services

import (
	"context"
	"io"
	"log/slog"

	"finledger/internal/amqp"
	"finledger/internal/core"
	"finledger/internal/ledger"
	applog "finledger/internal/log"
)

// EventPublisher publishes ledger mutation events. *amqp.Client satisfies
// it.
type EventPublisher interface {
	PublishTransactionEvent(ctx context.Context, event string, id int64, ownerEmail string) error
}

// LedgerService wraps a ledger backend with best-effort event publishing.
// The store mutation always wins: a publish failure is logged and dropped,
// never surfaced to the caller, because collaborators listening to events
// play no role in data correctness.
type LedgerService struct {
	store     ledger.Ledger
	publisher EventPublisher
}

func NewLedgerService(store ledger.Ledger, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
	}
}

// Create stores the transaction and publishes a created event.
func (s *LedgerService) Create(ctx context.Context, in ledger.TransactionInput) (core.Transaction, error) {
	tx, err := s.store.Create(ctx, in)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publish(ctx, amqp.EventCreated, tx.ID, tx.OwnerEmail)
	return tx, nil
}

// Update replaces the transaction and publishes an updated event.
func (s *LedgerService) Update(ctx context.Context, id int64, in ledger.TransactionInput) (core.Transaction, error) {
	tx, err := s.store.Update(ctx, id, in)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publish(ctx, amqp.EventUpdated, tx.ID, tx.OwnerEmail)
	return tx, nil
}

// Delete removes the transaction and publishes a deleted event.
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	tx, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, amqp.EventDeleted, id, tx.OwnerEmail)
	return nil
}

// GetByID delegates to the backend.
func (s *LedgerService) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	return s.store.GetByID(ctx, id)
}

// ListByOwner delegates to the backend.
func (s *LedgerService) ListByOwner(ctx context.Context, ownerEmail string) ([]core.Transaction, error) {
	return s.store.ListByOwner(ctx, ownerEmail)
}

func (s *LedgerService) publish(ctx context.Context, event string, id int64, ownerEmail string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionEvent(ctx, event, id, ownerEmail); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			applog.FieldError, err,
			applog.FieldEvent, event,
			applog.FieldTransactionID, id)
	}
}

// Close closes the underlying backend when it owns resources.
func (s *LedgerService) Close() error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
