// Package report computes read-side aggregates over a snapshot of
// transactions already scoped to one owner. All functions are pure and
// deterministic; none of them mutates its input.
package report

import (
	"sort"

	"finledger/internal/core"
)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// Summary bundles the totals a reporting view needs in one pass.
type Summary struct {
	TotalIncome  core.Money
	TotalExpense core.Money
	Balance      core.Money
	ByCategory   []CategoryAmount // expenses only, descending by amount
}

// TotalByType sums amounts over records with the matching type.
// An empty input yields zero.
func TotalByType(txs []core.Transaction, typ core.TransactionType) core.Money {
	var total core.Money
	for _, tx := range txs {
		if tx.Type == typ {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense. It may be negative.
func Balance(txs []core.Transaction) core.Money {
	return TotalByType(txs, core.Income).Sub(TotalByType(txs, core.Expense))
}

// ExpenseByCategory sums expense amounts per category and orders entries
// by summed amount descending. Ties keep first-encountered category order;
// categories with no expenses are omitted.
func ExpenseByCategory(txs []core.Transaction) []CategoryAmount {
	sums := make(map[string]int64)
	var order []string
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] += tx.Amount.Cents
	}

	out := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryAmount{Name: name, Amount: core.Money{Cents: sums[name]}})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cents > out[j].Amount.Cents
	})
	return out
}

// CategoryTotal sums amounts where both type and category match. Used for
// the per-transaction "total in this category" display.
func CategoryTotal(txs []core.Transaction, typ core.TransactionType, category string) core.Money {
	var total core.Money
	for _, tx := range txs {
		if tx.Type == typ && tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Summarize computes the full reporting view in one call.
func Summarize(txs []core.Transaction) Summary {
	income := TotalByType(txs, core.Income)
	expense := TotalByType(txs, core.Expense)
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		ByCategory:   ExpenseByCategory(txs),
	}
}
