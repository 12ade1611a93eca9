package handler

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
)

// CurrencyService defines the behavior needed by ReferenceHandler.
type CurrencyService interface {
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal
	Format(amount decimal.Decimal, code string) string
	Currencies() *domain.CurrencyTable
}

// ReferenceHandler serves the currency and category reference tables.
type ReferenceHandler struct {
	currency   CurrencyService
	categories *domain.CategoryTable
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(currency CurrencyService, categories *domain.CategoryTable) *ReferenceHandler {
	return &ReferenceHandler{currency: currency, categories: categories}
}

// Currencies lists the supported currencies.
func (h *ReferenceHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.CurrenciesFromDomain(h.currency.Currencies().All()))
}

// Convert converts ?amount= from ?from= into ?to=. Missing codes mean the
// base currency.
func (h *ReferenceHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	from := codeOrBase(q.Get("from"))
	to := codeOrBase(q.Get("to"))
	for _, code := range []string{from, to} {
		if err := domain.ValidateCurrency(code, h.currency.Currencies()); err != nil {
			writeError(w, http.StatusBadRequest, "invalid currency", err.Error())
			return
		}
	}

	result := h.currency.Convert(amount, from, to)

	writeJSON(w, http.StatusOK, dto.ConversionResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Result:    result,
		Formatted: h.currency.Format(result, to),
	})
}

// Categories lists categories, optionally restricted by ?type=.
func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	typ := domain.TransactionType(strings.ToLower(r.URL.Query().Get("type")))

	switch {
	case typ == "" || typ == "all":
		writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(h.categories.All()))
	case typ.IsValid():
		writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(h.categories.ByType(typ)))
	default:
		writeError(w, http.StatusBadRequest, "invalid category type", domain.ErrInvalidType.Error())
	}
}

func codeOrBase(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.BaseCurrency
	}
	return code
}
