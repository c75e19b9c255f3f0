// Package core holds the ledger's domain types: transactions, money,
// dates and the error taxonomy shared by every backend.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var cent = decimal.New(1, 2) // 100

// ParseAmount converts a decimal string to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds half-up past the second decimal place. Only strictly positive
// amounts are accepted.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	v := d.Mul(cent).Round(0).IntPart()
	if v <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: v}, nil
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return decimal.New(m.Cents, -2).StringFixed(2)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns the difference of two amounts. The result may be negative,
// e.g. a balance where expenses exceed income.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}
