package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"finledger/internal/core"
)

func TestCategoriesAndDefault(t *testing.T) {
	c := Default()

	income, err := c.Categories(core.Income)
	if err != nil || len(income) == 0 {
		t.Fatalf("unexpected income categories: %v err=%v", income, err)
	}
	def, err := c.DefaultCategory(core.Income)
	if err != nil || def != income[0] {
		t.Fatalf("default = %q, want %q (err=%v)", def, income[0], err)
	}

	if !c.Valid(core.Expense, "Rent") {
		t.Fatalf("expected Rent valid for expense")
	}
	if c.Valid(core.Income, "Rent") {
		t.Fatalf("Rent must not be valid for income")
	}
}

func TestUnknownTypeFails(t *testing.T) {
	c := Default()
	_, err := c.Categories("transfer")
	var ite *core.InvalidTypeError
	if !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
	if _, err := c.DefaultCategory("transfer"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if c.Valid("transfer", "Rent") {
		t.Fatalf("unknown type must not validate")
	}
}

func TestNewDedupes(t *testing.T) {
	c := New(map[core.TransactionType][]string{
		core.Income: {"A", " B ", "A", "", "B"},
	})
	cats, err := c.Categories(core.Income)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 2 || cats[0] != "A" || cats[1] != "B" {
		t.Fatalf("unexpected cats: %v", cats)
	}
}

func TestNewFromFilesSeedsAndFallback(t *testing.T) {
	dir := t.TempDir()

	// No files -> built-in defaults
	c := NewFromFiles(dir)
	if cats, _ := c.Categories(core.Expense); len(cats) == 0 {
		t.Fatalf("expected defaults when files missing")
	}

	if err := os.WriteFile(filepath.Join(dir, "seed_expense.txt"), []byte("# header\nCasa\nCibo\nCasa\n\n"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	c = NewFromFiles(dir)
	cats, _ := c.Categories(core.Expense)
	if len(cats) != 2 || cats[0] != "Casa" || cats[1] != "Cibo" {
		t.Fatalf("unexpected cats: %v", cats)
	}
	// Income file absent -> still defaults
	if cats, _ := c.Categories(core.Income); len(cats) == 0 {
		t.Fatalf("expected income fallback")
	}
}
