package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the lexical form of Transaction.Date. String comparison on
// values in this layout orders them chronologically.
const DateLayout = "2006-01-02"

// TransactionType is the closed set of ledger entry kinds.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single budget entry. Amount is always a positive
// magnitude; the sign is implied by Type.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
	Date        string
}

// CurrencyOrBase returns the transaction currency, or BaseCurrency when unset.
func (t *Transaction) CurrencyOrBase() string {
	if t.Currency == "" {
		return BaseCurrency
	}
	return t.Currency
}

// Time parses Date. Dates are validated on creation so the error is only
// reachable for records constructed outside the store; the monthly series
// skips such records.
func (t *Transaction) Time() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// Validate checks the invariants every stored transaction must hold.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if err := ValidateDescription(t.Description); err != nil {
		return err
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}

	return ValidateDate(t.Date)
}

// SlugifyCategory turns a user-entered custom category name into an id:
// lowercased, with whitespace runs collapsed into a single dash.
func SlugifyCategory(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
