package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/currency"
	"github.com/iho/gobudget/internal/reference"
)

func newReferenceHandler() *ReferenceHandler {
	tables := reference.Defaults()
	return NewReferenceHandler(currency.NewConverter(tables.Currencies, zerolog.Nop(), nil), tables.Categories)
}

func TestReferenceHandler_Currencies(t *testing.T) {
	rec := httptest.NewRecorder()
	newReferenceHandler().Currencies(rec, httptest.NewRequest(http.MethodGet, "/currencies", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.CurrencyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 15)
	assert.Equal(t, "USD", resp[0].Code)
	assert.Equal(t, "$", resp[0].Symbol)
}

func TestReferenceHandler_Convert(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantResult string
		formatted  string
	}{
		{"usd to eur", "amount=100&from=USD&to=EUR", http.StatusOK, "85", "€85.00"},
		{"missing from means base", "amount=10&to=jpy", http.StatusOK, "1100", "¥1,100"},
		{"same currency", "amount=12.34&from=GBP&to=GBP", http.StatusOK, "12.34", "£12.34"},
		{"bad amount", "amount=ten&to=EUR", http.StatusBadRequest, "", ""},
		{"unknown currency", "amount=1&from=XYZ&to=EUR", http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newReferenceHandler().Convert(rec, httptest.NewRequest(http.MethodGet, "/currencies/convert?"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp dto.ConversionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, decimal.RequireFromString(tt.wantResult).Equal(resp.Result), "got %s", resp.Result)
			assert.Equal(t, tt.formatted, resp.Formatted)
		})
	}
}

func TestReferenceHandler_Categories(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantLen    int
	}{
		{"", http.StatusOK, 15},
		{"type=all", http.StatusOK, 15},
		{"type=income", http.StatusOK, 5},
		{"type=EXPENSE", http.StatusOK, 10},
		{"type=transfer", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newReferenceHandler().Categories(rec, httptest.NewRequest(http.MethodGet, "/categories?"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp []dto.CategoryResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp, tt.wantLen)
		})
	}
}
