package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/aggregation"
	"github.com/iho/gobudget/internal/domain"
)

// Formatter renders amounts for display.
type Formatter interface {
	Format(amount decimal.Decimal, code string) string
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Currency:    t.CurrencyOrBase(),
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i := range txs {
		result[i] = TransactionFromDomain(&txs[i])
	}
	return result
}

// ListTransactionsResponse represents a filtered transaction history.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Count        int                    `json:"count"`
}

// TrendResponse represents a period-over-period change.
type TrendResponse struct {
	Percent decimal.Decimal `json:"percent"`
	Label   string          `json:"label"`
}

// SummaryResponse represents the summary cards.
type SummaryResponse struct {
	Period       string         `json:"period"`
	Currency     string         `json:"currency"`
	Windows      domain.Windows `json:"windows"`
	TotalIncome  MoneyResponse  `json:"total_income"`
	TotalExpense MoneyResponse  `json:"total_expense"`
	Balance      MoneyResponse  `json:"balance"`
	IncomeTrend  TrendResponse  `json:"income_trend"`
	ExpenseTrend TrendResponse  `json:"expense_trend"`
}

// MoneyResponse pairs an amount, rounded to cents, with its display form.
type MoneyResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

func money(f Formatter, amount decimal.Decimal, code string) MoneyResponse {
	return MoneyResponse{Amount: amount.Round(2), Formatted: f.Format(amount, code)}
}

// SummaryFromDomain converts a summary to a response.
func SummaryFromDomain(s aggregation.Summary, f Formatter) *SummaryResponse {
	return &SummaryResponse{
		Period:       string(s.Period),
		Currency:     s.Currency,
		Windows:      s.Windows,
		TotalIncome:  money(f, s.TotalIncome, s.Currency),
		TotalExpense: money(f, s.TotalExpense, s.Currency),
		Balance:      money(f, s.Balance, s.Currency),
		IncomeTrend:  TrendResponse{Percent: s.IncomeTrend.Percent, Label: s.IncomeTrend.Label},
		ExpenseTrend: TrendResponse{Percent: s.ExpenseTrend.Percent, Label: s.ExpenseTrend.Label},
	}
}

// SeriesPointResponse represents one chart bucket.
type SeriesPointResponse struct {
	Label   string          `json:"label"`
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// SeriesFromDomain converts series points to responses.
func SeriesFromDomain(points []aggregation.SeriesPoint) []SeriesPointResponse {
	result := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		result[i] = SeriesPointResponse{
			Label:   p.Label,
			Start:   p.Window.Start,
			End:     p.Window.End,
			Income:  p.Income.Round(2),
			Expense: p.Expense.Round(2),
			Balance: p.Balance.Round(2),
		}
	}
	return result
}

// CategorySliceResponse represents one breakdown entry.
type CategorySliceResponse struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Value    MoneyResponse   `json:"value"`
	Share    decimal.Decimal `json:"share"`
}

// BreakdownFromDomain converts breakdown entries to responses.
func BreakdownFromDomain(slices []aggregation.CategorySlice, currency string, f Formatter) []CategorySliceResponse {
	result := make([]CategorySliceResponse, len(slices))
	for i, s := range slices {
		result[i] = CategorySliceResponse{
			Category: s.CategoryID,
			Name:     s.Name,
			Color:    s.Color,
			Value:    money(f, s.Value, currency),
			Share:    s.Share,
		}
	}
	return result
}

// DashboardResponse bundles every dashboard panel.
type DashboardResponse struct {
	Summary    *SummaryResponse        `json:"summary"`
	Series     []SeriesPointResponse   `json:"series"`
	Categories []CategorySliceResponse `json:"categories"`
}

// DashboardFromDomain converts a dashboard to a response.
func DashboardFromDomain(d aggregation.Dashboard, f Formatter) *DashboardResponse {
	return &DashboardResponse{
		Summary:    SummaryFromDomain(d.Summary, f),
		Series:     SeriesFromDomain(d.Series),
		Categories: BreakdownFromDomain(d.Breakdown, d.Summary.Currency, f),
	}
}

// CurrencyResponse represents a supported currency.
type CurrencyResponse struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
}

// CurrenciesFromDomain converts currencies to responses.
func CurrenciesFromDomain(currencies []domain.Currency) []CurrencyResponse {
	result := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		result[i] = CurrencyResponse{Code: c.Code, Symbol: c.Symbol, Name: c.Name, Rate: c.Rate}
	}
	return result
}

// ConversionResponse represents a currency conversion.
type ConversionResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted"`
}

// CategoryResponse represents a category.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// CategoriesFromDomain converts categories to responses.
func CategoriesFromDomain(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon, Type: string(c.Type)}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
