package storage

import (
	"context"
	"path/filepath"
	"testing"

	"finledger/internal/catalog"
	"finledger/internal/core"
	"finledger/internal/ledger"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"), catalog.Default())
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testInput() ledger.TransactionInput {
	return ledger.TransactionInput{
		Type:        core.Expense,
		Category:    "Rent",
		Amount:      core.Money{Cents: 150000},
		Description: "Apartment rent",
		Date:        core.NewDate(2024, 1, 5),
		OwnerEmail:  "a@x.com",
		OwnerName:   "Ann",
	}
}

func TestSQLiteCreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	tx, err := repo.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetByID(ctx, tx.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != tx.Type || got.Category != tx.Category || got.Amount != tx.Amount ||
		got.Description != tx.Description || got.Date.String() != tx.Date.String() ||
		got.OwnerEmail != tx.OwnerEmail || got.OwnerName != tx.OwnerName {
		t.Fatalf("round trip mismatch: %+v != %+v", got, tx)
	}
}

func TestSQLiteCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	in := testInput()
	in.Amount = core.Money{Cents: 0}
	if _, err := repo.Create(ctx, in); !core.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	in = testInput()
	in.Type = core.Income
	in.Category = "Rent"
	if _, err := repo.Create(ctx, in); !core.IsValidation(err) {
		t.Fatalf("expected category mismatch rejection, got %v", err)
	}

	list, err := repo.ListByOwner(ctx, "a@x.com")
	if err != nil || len(list) != 0 {
		t.Fatalf("failed creates must not commit: %v err=%v", list, err)
	}
}

func TestSQLiteUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	tx, _ := repo.Create(ctx, testInput())

	in := ledger.TransactionInput{
		Type:        core.Income,
		Category:    "Salary",
		Amount:      core.Money{Cents: 500000},
		Description: "Monthly salary",
		Date:        core.NewDate(2024, 1, 1),
		OwnerEmail:  "intruder@x.com",
	}
	updated, err := repo.Update(ctx, tx.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.OwnerEmail != "a@x.com" {
		t.Fatalf("owner must be immutable, got %q", updated.OwnerEmail)
	}
	got, _ := repo.GetByID(ctx, tx.ID)
	if got.Type != core.Income || got.Category != "Salary" || got.Amount.Cents != 500000 {
		t.Fatalf("update not persisted: %+v", got)
	}

	if _, err := repo.Update(ctx, 9999, in); !core.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSQLiteUpdateValidationLeavesRowIntact(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	tx, _ := repo.Create(ctx, testInput())

	in := testInput()
	in.Category = "Salary" // income category on an expense record
	if _, err := repo.Update(ctx, tx.ID, in); !core.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	got, _ := repo.GetByID(ctx, tx.ID)
	if got.Category != "Rent" {
		t.Fatalf("failed update must not change the row: %+v", got)
	}
}

func TestSQLiteDeleteTwiceFails(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	tx, _ := repo.Create(ctx, testInput())

	if err := repo.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, tx.ID); !core.IsNotFound(err) {
		t.Fatalf("second delete must fail with NotFoundError, got %v", err)
	}
}

func TestSQLiteOwnerIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.Create(ctx, testInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	other, err := repo.ListByOwner(ctx, "b@x.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("owner b must not see a's rows: %+v", other)
	}
}

func TestSQLiteListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	var ids []int64
	for i := 0; i < 3; i++ {
		tx, err := repo.Create(ctx, testInput())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, tx.ID)
	}
	list, err := repo.ListByOwner(ctx, "a@x.com")
	if err != nil || len(list) != 3 {
		t.Fatalf("list: %v err=%v", list, err)
	}
	for i := range ids {
		if list[i].ID != ids[i] {
			t.Fatalf("order mismatch at %d: %v", i, list)
		}
	}
}
