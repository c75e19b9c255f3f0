package query

import (
	"testing"

	"finledger/internal/core"
)

func tx(id int64, cents int64, year, month, day int) core.Transaction {
	return core.Transaction{
		ID:          id,
		Type:        core.Expense,
		Category:    "Food",
		Amount:      core.Money{Cents: cents},
		Description: "t",
		Date:        core.NewDate(year, month, day),
		OwnerEmail:  "a@x.com",
	}
}

func ids(txs []core.Transaction) []int64 {
	out := make([]int64, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestSortedByDate(t *testing.T) {
	in := []core.Transaction{
		tx(1, 100, 2024, 3, 1),
		tx(2, 100, 2024, 1, 1),
		tx(3, 100, 2024, 2, 1),
	}
	asc := Sorted(in, ByDate, Asc)
	if got := ids(asc); got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Fatalf("asc order: %v", got)
	}
	desc := Sorted(in, ByDate, Desc)
	if got := ids(desc); got[0] != 1 || got[1] != 3 || got[2] != 2 {
		t.Fatalf("desc order: %v", got)
	}
}

func TestSortedByAmount(t *testing.T) {
	in := []core.Transaction{
		tx(1, 300, 2024, 1, 1),
		tx(2, 100, 2024, 1, 2),
		tx(3, 200, 2024, 1, 3),
	}
	asc := Sorted(in, ByAmount, Asc)
	if got := ids(asc); got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Fatalf("asc order: %v", got)
	}
}

func TestSortedStableOnTies(t *testing.T) {
	in := []core.Transaction{
		tx(1, 500, 2024, 1, 1),
		tx(2, 500, 2024, 1, 2),
		tx(3, 500, 2024, 1, 3),
	}
	desc := Sorted(in, ByAmount, Desc)
	if got := ids(desc); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("tied entries must keep input order: %v", got)
	}
}

func TestSortedDoesNotMutateInput(t *testing.T) {
	in := []core.Transaction{
		tx(1, 300, 2024, 1, 1),
		tx(2, 100, 2024, 1, 2),
	}
	_ = Sorted(in, ByAmount, Asc)
	if in[0].ID != 1 || in[1].ID != 2 {
		t.Fatalf("input mutated: %v", ids(in))
	}
}

func TestParseOrder(t *testing.T) {
	k, d, err := ParseOrder("date-desc")
	if err != nil || k != ByDate || d != Desc {
		t.Fatalf("unexpected: %v %v %v", k, d, err)
	}
	if _, _, err := ParseOrder("amount"); err == nil {
		t.Fatalf("expected error for missing direction")
	}
	if _, _, err := ParseOrder("price-asc"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, _, err := ParseOrder("date-up"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
