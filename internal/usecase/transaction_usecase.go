package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// TransactionUseCase handles transaction store business logic.
type TransactionUseCase struct {
	repo       TransactionRepository
	idGen      IDGenerator
	currencies *domain.CurrencyTable
	categories *domain.CategoryTable
	recorder   Recorder
	logger     zerolog.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase. A nil recorder
// discards measurements.
func NewTransactionUseCase(
	repo TransactionRepository,
	idGen IDGenerator,
	currencies *domain.CurrencyTable,
	categories *domain.CategoryTable,
	recorder Recorder,
	logger zerolog.Logger,
) *TransactionUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &TransactionUseCase{
		repo:       repo,
		idGen:      idGen,
		currencies: currencies,
		categories: categories,
		recorder:   recorder,
		logger:     logger,
	}
}

// TransactionInput represents the user-editable fields of a transaction.
type TransactionInput struct {
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
	Date        string
}

// CreateTransaction validates input and stores a new transaction.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input TransactionInput) (*domain.Transaction, error) {
	tx, err := uc.build(input)
	if err != nil {
		return nil, err
	}
	tx.ID = uc.idGen.Generate()

	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	uc.recorder.ObserveTransaction("create")
	uc.logger.Debug().Str("id", tx.ID).Str("type", string(tx.Type)).Msg("transaction created")

	return tx, nil
}

// UpdateTransaction replaces every field of an existing transaction except its id.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*domain.Transaction, error) {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	tx, err := uc.build(input)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	if err := uc.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	uc.recorder.ObserveTransaction("update")

	return tx, nil
}

// DeleteTransaction removes a transaction.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.recorder.ObserveTransaction("delete")

	return nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.repo.GetByID(ctx, id)
}

// ListTransactionsInput represents the transaction history filters.
// Empty values and "all" disable a filter. A positive Limit caps the result.
type ListTransactionsInput struct {
	Search   string
	Type     string
	Category string
	Sort     string
	Limit    int
}

// ListTransactions returns the transactions matching input, sorted by
// input.Sort (newest first by default). Ties keep insertion order.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]domain.Transaction, error) {
	less, err := sortFunc(input.Sort)
	if err != nil {
		return nil, err
	}

	typ := domain.TransactionType(strings.ToLower(input.Type))
	if typ == "all" {
		typ = ""
	}
	if typ != "" && !typ.IsValid() {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidFilter, input.Type)
	}

	category := domain.SlugifyCategory(input.Category)
	if category == "all" {
		category = ""
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(all))
	for _, tx := range all {
		if typ != "" && tx.Type != typ {
			continue
		}
		if category != "" && tx.Category != category {
			continue
		}
		if search != "" && !uc.matches(&tx, search) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })

	if input.Limit > 0 && len(out) > input.Limit {
		out = out[:input.Limit]
	}

	return out, nil
}

// matches reports whether search is a substring of the description or of
// the resolved category name.
func (uc *TransactionUseCase) matches(tx *domain.Transaction, search string) bool {
	if strings.Contains(strings.ToLower(tx.Description), search) {
		return true
	}
	c, _ := uc.categories.Resolve(tx.Type, tx.Category)
	return strings.Contains(strings.ToLower(c.Name), search)
}

func sortFunc(order string) (func(a, b *domain.Transaction) bool, error) {
	switch order {
	case "", SortDateDesc:
		return func(a, b *domain.Transaction) bool { return a.Date > b.Date }, nil
	case SortDateAsc:
		return func(a, b *domain.Transaction) bool { return a.Date < b.Date }, nil
	case SortAmountDesc:
		return func(a, b *domain.Transaction) bool { return a.Amount.GreaterThan(b.Amount) }, nil
	case SortAmountAsc:
		return func(a, b *domain.Transaction) bool { return a.Amount.LessThan(b.Amount) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidFilter, order)
	}
}

// build normalizes input into a transaction and validates it.
func (uc *TransactionUseCase) build(input TransactionInput) (*domain.Transaction, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Currency))
	if code == "" {
		code = domain.BaseCurrency
	}

	tx := &domain.Transaction{
		Type:        input.Type,
		Amount:      input.Amount,
		Currency:    code,
		Category:    domain.SlugifyCategory(input.Category),
		Description: strings.TrimSpace(input.Description),
		Date:        strings.TrimSpace(input.Date),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(tx.Currency, uc.currencies); err != nil {
		return nil, err
	}

	return tx, nil
}
