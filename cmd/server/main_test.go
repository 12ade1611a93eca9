package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/infrastructure/config"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTPPort:            "0",
		MetricsPort:         "0",
		HTTPShutdownTimeout: time.Second,
		CacheTTL:            time.Minute,
		CacheSize:           32,
		IdempotencyTTL:      time.Hour,
		BaseCurrency:        "USD",
		DisplayCurrency:     "USD",
		SeedDemoData:        true,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	a, err := newApp(context.Background(), cfg, zerolog.Nop(), metrics.NewWithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	t.Cleanup(a.close)
	return a
}

func TestNewApp_ServesSeededDashboard(t *testing.T) {
	a := newTestApp(t, testConfig())

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?at=2025-07-20", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		TotalIncome struct {
			Formatted string `json:"formatted"`
		} `json:"total_income"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// 5000 USD salary + 1000 EUR freelance
	assert.Equal(t, "$6,176.47", body.TotalIncome.Formatted)
	assert.Len(t, a.sweepers, 2)
}

func TestNewApp_DisplayCurrencyDefault(t *testing.T) {
	cfg := testConfig()
	cfg.DisplayCurrency = "EUR"
	a := newTestApp(t, cfg)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?at=2025-07-20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":"EUR"`)
}

func TestNewApp_WithRedis(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisURL = "redis://" + s.Addr()
	cfg.RateLimitRPS = 100
	cfg.RateLimitBurst = 100

	a := newTestApp(t, cfg)
	require.NotNil(t, a.redisClient)
	assert.Len(t, a.sweepers, 1)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"ok"`)

	rec = httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?at=2025-07-20", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	keys := s.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "budget:cache:dashboard:dashboard:monthly:USD:2025-07-20:"), keys[0])
}

func TestNewApp_ReferenceDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	data := `
currencies:
  - {code: USD, symbol: "$", name: US Dollar, rate: "1"}
  - {code: NOK, symbol: kr, name: Norwegian Krone, rate: "10"}
categories:
  income:
    - {id: salary, name: Salary, color: "#10b981", icon: Banknote}
  expense:
    - {id: food, name: Food, color: "#ef4444", icon: Utensils}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg := testConfig()
	cfg.ReferenceDataPath = path
	cfg.DisplayCurrency = "NOK"
	a := newTestApp(t, cfg)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOK"`)
	assert.NotContains(t, rec.Body.String(), `"code":"EUR"`)
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown display currency", func(c *config.Config) { c.DisplayCurrency = "XYZ" }},
		{"missing reference file", func(c *config.Config) { c.ReferenceDataPath = "/nonexistent/reference.yaml" }},
		{"malformed redis url", func(c *config.Config) { c.RedisURL = "://nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			_, err := newApp(context.Background(), cfg, zerolog.Nop(), metrics.NewWithRegisterer(prometheus.NewRegistry()))
			assert.Error(t, err)
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reg := prometheus.NewRegistry()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, testConfig(), zerolog.Nop(), metrics.NewWithRegisterer(reg), reg)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
