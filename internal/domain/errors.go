package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("transaction type must be income or expense")
	ErrInvalidDate         = errors.New("date must be a calendar date in YYYY-MM-DD form")
	ErrEmptyDescription    = errors.New("description is required")
	ErrEmptyCategory       = errors.New("category is required")

	// Reference data errors
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidPeriod   = errors.New("period must be weekly, monthly or yearly")

	// Query errors
	ErrInvalidFilter = errors.New("invalid list filter")
)
