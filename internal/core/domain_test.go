package core

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || int(d.Month()) != 1 || d.Day() != 5 {
		t.Fatalf("unexpected date: %v", d)
	}
	if _, err := ParseDate("05/01/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -500}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Type:        Expense,
		Category:    "Rent",
		Amount:      Money{Cents: 150000},
		Description: "Apartment rent",
		Date:        NewDate(2024, 1, 5),
		OwnerEmail:  "a@x.com",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name  string
		tx    Transaction
		field string
	}{
		{"bad type", Transaction{Type: "transfer", Amount: Money{Cents: 1}, Description: "a", Date: NewDate(2024, 1, 1), OwnerEmail: "a@x.com"}, FieldType},
		{"zero amount", Transaction{Type: Income, Amount: Money{Cents: 0}, Description: "a", Date: NewDate(2024, 1, 1), OwnerEmail: "a@x.com"}, FieldAmount},
		{"negative amount", Transaction{Type: Income, Amount: Money{Cents: -500}, Description: "a", Date: NewDate(2024, 1, 1), OwnerEmail: "a@x.com"}, FieldAmount},
		{"empty description", Transaction{Type: Income, Amount: Money{Cents: 1}, Description: "  ", Date: NewDate(2024, 1, 1), OwnerEmail: "a@x.com"}, FieldDescription},
		{"zero date", Transaction{Type: Income, Amount: Money{Cents: 1}, Description: "a", OwnerEmail: "a@x.com"}, FieldDate},
		{"no owner", Transaction{Type: Income, Amount: Money{Cents: 1}, Description: "a", Date: NewDate(2024, 1, 1)}, FieldOwnerEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tx.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !ve.Has(tc.field) {
				t.Fatalf("expected field %q in %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	err := Transaction{}.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{FieldType, FieldAmount, FieldDescription, FieldDate, FieldOwnerEmail} {
		if !ve.Has(f) {
			t.Fatalf("expected field %q in %v", f, ve.Fields)
		}
	}
}
