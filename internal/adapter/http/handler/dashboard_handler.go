package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/aggregation"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Dashboard(ctx context.Context, input usecase.DashboardInput) (aggregation.Dashboard, error)
	Summary(ctx context.Context, input usecase.DashboardInput) (aggregation.Summary, error)
	Series(ctx context.Context, input usecase.DashboardInput) ([]aggregation.SeriesPoint, error)
	Categories(ctx context.Context, input usecase.DashboardInput) ([]aggregation.CategorySlice, error)
}

// DashboardHandler serves the aggregated dashboard panels.
type DashboardHandler struct {
	dashboardUC     DashboardService
	currencies      *domain.CurrencyTable
	formatter       dto.Formatter
	defaultCurrency string
}

// NewDashboardHandler creates a new DashboardHandler. Requests without a
// currency parameter are reported in defaultCurrency.
func NewDashboardHandler(dashboardUC DashboardService, currencies *domain.CurrencyTable, formatter dto.Formatter, defaultCurrency string) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:     dashboardUC,
		currencies:      currencies,
		formatter:       formatter,
		defaultCurrency: defaultCurrency,
	}
}

// Dashboard returns every panel at once.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	input, ok := h.input(w, r)
	if !ok {
		return
	}

	d, err := h.dashboardUC.Dashboard(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromDomain(d, h.formatter))
}

// Summary returns the summary cards.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	input, ok := h.input(w, r)
	if !ok {
		return
	}

	s, err := h.dashboardUC.Summary(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(s, h.formatter))
}

// Series returns the income/expense chart data.
func (h *DashboardHandler) Series(w http.ResponseWriter, r *http.Request) {
	input, ok := h.input(w, r)
	if !ok {
		return
	}

	points, err := h.dashboardUC.Series(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute series", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SeriesFromDomain(points))
}

// Categories returns the expense breakdown.
func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	input, ok := h.input(w, r)
	if !ok {
		return
	}

	slices, err := h.dashboardUC.Categories(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute category breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BreakdownFromDomain(slices, input.Currency, h.formatter))
}

// input parses period, currency and at. It writes a 400 and returns false
// when any of them is invalid.
func (h *DashboardHandler) input(w http.ResponseWriter, r *http.Request) (usecase.DashboardInput, bool) {
	q := r.URL.Query()

	p, err := domain.ParsePeriod(q.Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return usecase.DashboardInput{}, false
	}

	code := strings.ToUpper(strings.TrimSpace(q.Get("currency")))
	if code == "" {
		code = h.defaultCurrency
	}
	if err := domain.ValidateCurrency(code, h.currencies); err != nil {
		writeError(w, http.StatusBadRequest, "invalid currency", err.Error())
		return usecase.DashboardInput{}, false
	}

	at, err := parseDateQuery(r, "at")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reference date", err.Error())
		return usecase.DashboardInput{}, false
	}

	return usecase.DashboardInput{Period: p, Currency: code, At: at}, true
}
