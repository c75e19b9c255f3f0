// Package catalog holds the static table of permitted category names per
// transaction type. It is loaded once at startup and immutable afterwards.
package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"finledger/internal/core"
)

// Catalog maps a transaction type to its ordered list of valid categories.
// The first entry of each list is the default category for that type.
type Catalog struct {
	byType map[core.TransactionType][]string
}

// New builds a catalog from the given table. Category names are trimmed
// and deduplicated preserving first-occurrence order.
func New(table map[core.TransactionType][]string) *Catalog {
	byType := make(map[core.TransactionType][]string, len(table))
	for typ, cats := range table {
		byType[typ] = dedupe(cats)
	}
	return &Catalog{byType: byType}
}

// Default returns the built-in category table.
func Default() *Catalog {
	return New(map[core.TransactionType][]string{
		core.Income:  {"Salary", "Freelance", "Investments", "Gifts", "Other"},
		core.Expense: {"Food", "Rent", "Transport", "Utilities", "Entertainment", "Health", "Shopping", "Other"},
	})
}

// NewFromFiles loads category lists from seed files in base
// (seed_income.txt, seed_expense.txt). Missing or empty files fall back
// to the built-in table for that type.
func NewFromFiles(base string) *Catalog {
	fallback := Default()
	income := readLines(filepath.Join(base, "seed_income.txt"))
	expense := readLines(filepath.Join(base, "seed_expense.txt"))
	if len(income) == 0 {
		income, _ = fallback.Categories(core.Income)
	}
	if len(expense) == 0 {
		expense, _ = fallback.Categories(core.Expense)
	}
	return New(map[core.TransactionType][]string{
		core.Income:  income,
		core.Expense: expense,
	})
}

// Categories returns the ordered category list for typ.
func (c *Catalog) Categories(typ core.TransactionType) ([]string, error) {
	cats, ok := c.byType[typ]
	if !ok {
		return nil, &core.InvalidTypeError{Type: typ}
	}
	return append([]string(nil), cats...), nil
}

// DefaultCategory returns the first category registered for typ.
func (c *Catalog) DefaultCategory(typ core.TransactionType) (string, error) {
	cats, ok := c.byType[typ]
	if !ok || len(cats) == 0 {
		return "", &core.InvalidTypeError{Type: typ}
	}
	return cats[0], nil
}

// Valid reports whether category is registered for typ.
func (c *Catalog) Valid(typ core.TransactionType, category string) bool {
	for _, cat := range c.byType[typ] {
		if cat == category {
			return true
		}
	}
	return false
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
