package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	valid := func() Transaction {
		return Transaction{
			ID:          "tx-1",
			Type:        TransactionTypeExpense,
			Amount:      decimal.NewFromInt(25),
			Currency:    "USD",
			Category:    "food",
			Description: "Groceries",
			Date:        "2025-07-03",
		}
	}

	tests := []struct {
		name        string
		mutate      func(tx *Transaction)
		expectError error
	}{
		{
			name:        "valid transaction",
			mutate:      func(tx *Transaction) {},
			expectError: nil,
		},
		{
			name:        "unknown type",
			mutate:      func(tx *Transaction) { tx.Type = "transfer" },
			expectError: ErrInvalidType,
		},
		{
			name:        "zero amount",
			mutate:      func(tx *Transaction) { tx.Amount = decimal.Zero },
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			mutate:      func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-5) },
			expectError: ErrInvalidAmount,
		},
		{
			name:        "blank description",
			mutate:      func(tx *Transaction) { tx.Description = "   " },
			expectError: ErrEmptyDescription,
		},
		{
			name:        "missing category",
			mutate:      func(tx *Transaction) { tx.Category = "" },
			expectError: ErrEmptyCategory,
		},
		{
			name:        "impossible date",
			mutate:      func(tx *Transaction) { tx.Date = "2025-02-30" },
			expectError: ErrInvalidDate,
		},
		{
			name:        "date with time component",
			mutate:      func(tx *Transaction) { tx.Date = "2025-07-03T10:00:00Z" },
			expectError: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(&tx)

			err := tx.Validate()

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && !errors.Is(err, tt.expectError) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestTransaction_CurrencyOrBase(t *testing.T) {
	tx := Transaction{}
	if got := tx.CurrencyOrBase(); got != BaseCurrency {
		t.Errorf("expected %s, got %s", BaseCurrency, got)
	}

	tx.Currency = "EUR"
	if got := tx.CurrencyOrBase(); got != "EUR" {
		t.Errorf("expected EUR, got %s", got)
	}
}

func TestSlugifyCategory(t *testing.T) {
	tests := map[string]string{
		"Pet Care":          "pet-care",
		"  Side   Hustle  ": "side-hustle",
		"gifts":             "gifts",
	}

	for in, want := range tests {
		if got := SlugifyCategory(in); got != want {
			t.Errorf("SlugifyCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTransaction_Time(t *testing.T) {
	tx := Transaction{Date: "2024-02-29"}
	got, err := tx.Time()
	if err != nil {
		t.Fatalf("expected leap day to parse, got %v", err)
	}
	if got.Year() != 2024 || got.Month() != 2 || got.Day() != 29 {
		t.Fatalf("unexpected time %v", got)
	}

	for _, date := range []string{"", "2025-02-30", "2025-07-xx"} {
		tx.Date = date
		if _, err := tx.Time(); err == nil {
			t.Fatalf("expected %q to fail", date)
		}
	}
}
