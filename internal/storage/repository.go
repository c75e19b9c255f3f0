// Package storage provides the SQLite-backed ledger. It enforces the same
// invariants as the in-memory store so the backends are interchangeable.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finledger/internal/catalog"
	"finledger/internal/core"
	"finledger/internal/ledger"
	applog "finledger/internal/log"

	_ "modernc.org/sqlite"
)

const selectColumns = "id, type, category, amount_cents, description, date, owner_email, owner_name"

// SQLiteRepository implements ledger.Ledger on a SQLite database.
type SQLiteRepository struct {
	db      *sql.DB
	catalog *catalog.Catalog
}

// NewSQLiteRepository opens (creating directories as needed) the database
// at dbPath, runs migrations and returns a repository validating against
// cat.
func NewSQLiteRepository(dbPath string, cat *catalog.Catalog) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, catalog: cat}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Create implements ledger.Ledger.
func (r *SQLiteRepository) Create(ctx context.Context, in ledger.TransactionInput) (core.Transaction, error) {
	tx := core.Transaction{
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		OwnerEmail:  in.OwnerEmail,
		OwnerName:   in.OwnerName,
	}
	if err := ledger.Validate(r.catalog, tx); err != nil {
		return core.Transaction{}, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (type, category, amount_cents, description, date, owner_email, owner_name)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(tx.Type), tx.Category, tx.Amount.Cents, tx.Description, tx.Date.String(), tx.OwnerEmail, tx.OwnerName)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}
	tx.ID = id

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		applog.FieldTransactionID, tx.ID,
		applog.FieldType, string(tx.Type),
		applog.FieldCategory, tx.Category,
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldOwner, tx.OwnerEmail)

	return tx, nil
}

// Update implements ledger.Ledger. The whole read-validate-write sequence
// runs in one database transaction so readers never observe a partial
// update.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, in ledger.TransactionInput) (core.Transaction, error) {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("begin update: %w", err)
	}
	defer dbTx.Rollback()

	prev, err := scanTransaction(dbTx.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM transactions WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, &core.NotFoundError{ID: id}
		}
		return core.Transaction{}, fmt.Errorf("load transaction %d: %w", id, err)
	}

	next := core.Transaction{
		ID:          prev.ID,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		OwnerEmail:  prev.OwnerEmail,
		OwnerName:   prev.OwnerName,
	}
	if in.OwnerName != "" {
		next.OwnerName = in.OwnerName
	}
	if err := ledger.Validate(r.catalog, next); err != nil {
		return core.Transaction{}, err
	}

	if _, err := dbTx.ExecContext(ctx,
		`UPDATE transactions
		 SET type = ?, category = ?, amount_cents = ?, description = ?, date = ?, owner_name = ?
		 WHERE id = ?`,
		string(next.Type), next.Category, next.Amount.Cents, next.Description, next.Date.String(), next.OwnerName, id); err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	if err := dbTx.Commit(); err != nil {
		return core.Transaction{}, fmt.Errorf("commit update: %w", err)
	}
	return next, nil
}

// Delete implements ledger.Ledger. A second delete of the same id fails
// with NotFoundError, it never silently succeeds.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return &core.NotFoundError{ID: id}
	}
	return nil
}

// GetByID implements ledger.Ledger.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (core.Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM transactions WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, &core.NotFoundError{ID: id}
		}
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return tx, nil
}

// ListByOwner implements ledger.Ledger. Rows come back in insertion (id)
// order; callers apply their own sort key on top.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM transactions WHERE owner_email = ? ORDER BY id", ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", ownerEmail, err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		tx      core.Transaction
		typ     string
		dateStr string
	)
	if err := row.Scan(&tx.ID, &typ, &tx.Category, &tx.Amount.Cents, &tx.Description, &dateStr, &tx.OwnerEmail, &tx.OwnerName); err != nil {
		return core.Transaction{}, err
	}
	tx.Type = core.TransactionType(typ)
	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored date %q: %w", dateStr, err)
	}
	tx.Date = date
	return tx, nil
}
