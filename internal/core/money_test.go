package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1235, true}, // rounds half-up
		{"12.344", 1234, true},
		{"1500", 150000, true},
		{" 5000 ", 500000, true},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"12.3.4", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseAmount(tc.in)
		if tc.ok && (err != nil || m.Cents != tc.cents) {
			t.Fatalf("ParseAmount(%q) = %d, %v; want %d", tc.in, m.Cents, err, tc.cents)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	income := Money{Cents: 500000}
	expense := Money{Cents: 150000}
	if got := income.Sub(expense); got.Cents != 350000 {
		t.Fatalf("Sub = %d, want 350000", got.Cents)
	}
	if got := expense.Sub(income); got.Cents != -350000 {
		t.Fatalf("Sub = %d, want -350000", got.Cents)
	}
	if got := income.Add(expense); got.Cents != 650000 {
		t.Fatalf("Add = %d, want 650000", got.Cents)
	}
}

func TestMoneyString(t *testing.T) {
	if s := (Money{Cents: 1234}).String(); s != "12.34" {
		t.Fatalf("String = %q", s)
	}
	if s := (Money{Cents: 150000}).String(); s != "1500.00" {
		t.Fatalf("String = %q", s)
	}
}
