// Package worker consumes ledger mutation events and appends them to a
// CSV export file for downstream tooling.
package worker

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"finledger/internal/amqp"
	"finledger/internal/core"
	"finledger/internal/ledger"
	applog "finledger/internal/log"
)

var exportHeader = []string{"event", "id", "type", "category", "amount", "description", "date", "owner_email"}

// ExportWorker appends one CSV row per ledger event. Created and updated
// events are enriched with the current record state from the ledger;
// deleted events are written as tombstones.
type ExportWorker struct {
	store ledger.Ledger
	path  string
}

func NewExportWorker(store ledger.Ledger, path string) *ExportWorker {
	return &ExportWorker{
		store: store,
		path:  path,
	}
}

// HandleEvent processes a single transaction event.
func (w *ExportWorker) HandleEvent(ctx context.Context, msg *amqp.TransactionEventMessage) error {
	slog.InfoContext(ctx, "Processing transaction event",
		applog.FieldEvent, msg.Event,
		applog.FieldTransactionID, msg.ID,
		applog.FieldOperation, applog.OpExport)

	switch msg.Event {
	case amqp.EventCreated, amqp.EventUpdated:
		tx, err := w.store.GetByID(ctx, msg.ID)
		if err != nil {
			if core.IsNotFound(err) {
				// Deleted between event and processing; nothing to export.
				slog.WarnContext(ctx, "Transaction gone before export", applog.FieldTransactionID, msg.ID)
				return nil
			}
			return fmt.Errorf("load transaction %d: %w", msg.ID, err)
		}
		return w.append(recordRow(msg.Event, tx))
	case amqp.EventDeleted:
		return w.append([]string{msg.Event, strconv.FormatInt(msg.ID, 10), "", "", "", "", "", msg.OwnerEmail})
	default:
		slog.WarnContext(ctx, "Ignoring unknown event", applog.FieldEvent, msg.Event)
		return nil
	}
}

func recordRow(event string, tx core.Transaction) []string {
	return []string{
		event,
		strconv.FormatInt(tx.ID, 10),
		string(tx.Type),
		tx.Category,
		tx.Amount.String(),
		tx.Description,
		tx.Date.String(),
		tx.OwnerEmail,
	}
}

func (w *ExportWorker) append(row []string) error {
	if dir := filepath.Dir(w.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	info, statErr := os.Stat(w.path)
	fresh := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if fresh {
		if err := cw.Write(exportHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}
