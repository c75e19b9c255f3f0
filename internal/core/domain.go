package core

import (
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single dated money movement belonging to one owner.
	Transaction struct {
		ID          int64
		Type        TransactionType
		Category    string
		Amount      Money
		Description string
		Date        Date
		OwnerEmail  string
		OwnerName   string // denormalized display name
	}
)

// DateFormat is the wire format for transaction dates.
const DateFormat = "2006-01-02"

// IsValid reports whether t is a recognized transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

func (t TransactionType) String() string {
	return string(t)
}

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date string (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format(DateFormat)
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the field-level rules that do not need the category
// catalog: recognized type, positive amount, non-empty description,
// non-zero date and an owner. All violations are collected into a single
// ValidationError so callers can report every offending field at once.
func (tx Transaction) Validate() error {
	var fields []string
	if !tx.Type.IsValid() {
		fields = append(fields, FieldType)
	}
	if tx.Amount.Cents <= 0 {
		fields = append(fields, FieldAmount)
	}
	if strings.TrimSpace(tx.Description) == "" || len(tx.Description) > 200 {
		fields = append(fields, FieldDescription)
	}
	if tx.Date.IsZero() {
		fields = append(fields, FieldDate)
	}
	if strings.TrimSpace(tx.OwnerEmail) == "" {
		fields = append(fields, FieldOwnerEmail)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
