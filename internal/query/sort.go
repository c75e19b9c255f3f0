// Package query filters and orders transaction snapshots for readers.
// Everything here is pure: inputs are never mutated.
package query

import (
	"fmt"
	"sort"
	"strings"

	"finledger/internal/core"
)

const (
	ByDate   SortKey = "date"
	ByAmount SortKey = "amount"

	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type (
	SortKey   string
	Direction string
)

// ParseSortKey recognizes "date" and "amount".
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(s)) {
	case ByDate:
		return ByDate, nil
	case ByAmount:
		return ByAmount, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ParseDirection recognizes "asc" and "desc".
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.TrimSpace(s)) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// ParseOrder parses a combined "key-direction" token such as "date-desc".
func ParseOrder(s string) (SortKey, Direction, error) {
	key, dir, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return "", "", fmt.Errorf("malformed sort order %q", s)
	}
	k, err := ParseSortKey(key)
	if err != nil {
		return "", "", err
	}
	d, err := ParseDirection(dir)
	if err != nil {
		return "", "", err
	}
	return k, d, nil
}

// Sorted returns a new slice ordered by key in the given direction. The
// sort is stable: records with equal keys keep their relative input order.
func Sorted(txs []core.Transaction, key SortKey, dir Direction) []core.Transaction {
	out := append([]core.Transaction(nil), txs...)
	less := func(a, b core.Transaction) bool {
		switch key {
		case ByAmount:
			return a.Amount.Cents < b.Amount.Cents
		default:
			return a.Date.Time.Before(b.Date.Time)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
