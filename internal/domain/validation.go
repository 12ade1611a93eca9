package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxTransactionAmount = "1000000000000" // 1 trillion
)

// ValidateAmount validates a transaction amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxTransactionAmount)
	}

	return nil
}

// ValidateDescription validates a transaction description.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return ErrEmptyDescription
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrEmptyDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateDate validates a YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return nil
}

// ValidateCurrency validates a currency code against the given table.
// An empty code is accepted and means BaseCurrency.
func ValidateCurrency(code string, currencies *CurrencyTable) error {
	if code == "" {
		return nil
	}

	if _, ok := currencies.Lookup(code); !ok {
		return fmt.Errorf("%w: %s is not a supported currency", ErrInvalidCurrency, code)
	}

	return nil
}
