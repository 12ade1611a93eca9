package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}))

	expected := "{\n  \"a\": 1\n}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

func TestReportSummary_DemoData(t *testing.T) {
	out, _, err := execute(t, "report", "summary", "--at", "2025-07-20")
	require.NoError(t, err)

	assert.Contains(t, out, "2025-07-01 to 2025-07-31")
	assert.Contains(t, out, "$6,176.47")
	assert.Contains(t, out, "-14% from last month")
	assert.Contains(t, out, "$1,678.82")
	assert.Contains(t, out, "-8% from last month")
	assert.Contains(t, out, "$4,497.65")
}

func TestReportSeries_Yearly(t *testing.T) {
	out, _, err := execute(t, "report", "series", "--period", "yearly", "--at", "2025-07-20")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "2022"))
	assert.True(t, strings.HasPrefix(lines[4], "2025"))
}

func TestReportCategories_FileWithFallbacks(t *testing.T) {
	path := writeFile(t, "tx.yaml", `
- {type: expense, amount: 100, currency: USD, category: food, description: Lunch, date: 2025-07-02}
- {type: expense, amount: "50", currency: XYZ, category: gadgets, description: Gizmo, date: 2025-07-03}
- {type: income, amount: 1000, category: salary, description: Pay, date: 2025-07-01}
`)

	out, errOut, err := execute(t, "report", "categories", "-f", path, "--at", "2025-07-20", "-o", "json")
	require.NoError(t, err)

	var slices []dto.CategorySliceResponse
	require.NoError(t, json.Unmarshal([]byte(out), &slices))
	require.Len(t, slices, 2)
	assert.Equal(t, "food", slices[0].Category)
	assert.Equal(t, "Food & Dining", slices[0].Name)
	assert.Equal(t, "gadgets", slices[1].Name)
	assert.Equal(t, domain.NeutralCategoryColor, slices[1].Color)
	assert.Equal(t, "66.7", slices[0].Share.String())

	assert.Contains(t, errOut, "unknown currency")
	assert.Contains(t, errOut, "unknown expense category")
}

func TestReportCategories_JSONFile(t *testing.T) {
	path := writeFile(t, "tx.json", `[
  {"type": "expense", "amount": 12.5, "category": "transport", "description": "Bus", "date": "2025-07-04"}
]`)

	out, _, err := execute(t, "report", "categories", "--file", path, "--at", "2025-07-20", "--currency", "eur")
	require.NoError(t, err)

	assert.Contains(t, out, "Transportation")
	assert.Contains(t, out, "€10.63")
	assert.Contains(t, out, "100.0%")
}

func TestReport_Errors(t *testing.T) {
	badRow := writeFile(t, "bad.yaml", `- {type: expense, amount: 0, category: food, description: Nothing, date: 2025-07-01}`)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"unknown period", []string{"report", "summary", "--period", "daily"}, domain.ErrInvalidPeriod, ""},
		{"unknown currency", []string{"report", "summary", "--currency", "XYZ"}, domain.ErrInvalidCurrency, ""},
		{"malformed date", []string{"report", "summary", "--at", "07/20/2025"}, domain.ErrInvalidDate, ""},
		{"invalid row", []string{"report", "summary", "-f", badRow}, domain.ErrInvalidAmount, "transaction 1"},
		{"missing file", []string{"report", "summary", "-f", "/nonexistent.yaml"}, nil, "failed to read transactions"},
		{"unknown output", []string{"report", "summary", "-o", "xml"}, nil, "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCurrencyCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"convert", []string{"currency", "convert", "100", "USD", "EUR"}, "$100.00 = €85.00\n"},
		{"convert lowercase codes", []string{"currency", "convert", "10", "usd", "jpy"}, "$10.00 = ¥1,100\n"},
		{"format zero-decimal", []string{"currency", "format", "1234.5", "JPY"}, "¥1,235\n"},
		{"format two decimals", []string{"currency", "format", "1234.5", "USD"}, "$1,234.50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCurrencyConvert_JSON(t *testing.T) {
	out, _, err := execute(t, "currency", "convert", "85", "EUR", "USD", "-o", "json")
	require.NoError(t, err)

	var resp dto.ConversionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, decimal.NewFromInt(100).Equal(resp.Result), "got %s", resp.Result)
	assert.Equal(t, "$100.00", resp.Formatted)
}

func TestCurrencyConvert_Errors(t *testing.T) {
	_, _, err := execute(t, "currency", "convert", "ten", "USD", "EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, _, err = execute(t, "currency", "convert", "10", "USD", "XYZ")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	_, _, err = execute(t, "currency", "convert", "10", "USD")
	assert.Error(t, err)
}

func TestCurrencyList(t *testing.T) {
	out, _, err := execute(t, "currency", "list", "-o", "json")
	require.NoError(t, err)

	var currencies []dto.CurrencyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &currencies))
	assert.Len(t, currencies, 15)

	out, _, err = execute(t, "currency", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Japanese Yen")
}

func TestDashboard(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dashboard" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.DashboardResponse{
			Summary: &dto.SummaryResponse{
				Period:      "weekly",
				Currency:    "EUR",
				TotalIncome: dto.MoneyResponse{Formatted: "€850.00"},
				IncomeTrend: dto.TrendResponse{Label: "+5% from last week"},
				Balance:     dto.MoneyResponse{Formatted: "€700.00"},
			},
			Categories: []dto.CategorySliceResponse{
				{Category: "food", Name: "Food & Dining", Value: dto.MoneyResponse{Formatted: "€150.00"}, Share: decimal.NewFromInt(100)},
			},
		})
	}))
	defer srv.Close()

	out, _, err := execute(t, "dashboard", "--url", srv.URL, "--period", "weekly", "--currency", "EUR")
	require.NoError(t, err)

	assert.Equal(t, "currency=EUR&period=weekly", gotQuery)
	assert.Contains(t, out, "€850.00")
	assert.Contains(t, out, "+5% from last week")
	assert.Contains(t, out, "Food & Dining")
	assert.Contains(t, out, "100.0%")
}

func TestDashboard_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "invalid period", Message: `period must be weekly, monthly or yearly: "daily"`})
	}))
	defer srv.Close()

	_, _, err := execute(t, "dashboard", "--url", srv.URL, "--period", "daily")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid period")
}
