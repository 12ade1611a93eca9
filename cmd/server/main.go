package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/iho/gobudget/internal/adapter/cache"
	httpAdapter "github.com/iho/gobudget/internal/adapter/http"
	"github.com/iho/gobudget/internal/adapter/http/handler"
	"github.com/iho/gobudget/internal/adapter/http/middleware"
	"github.com/iho/gobudget/internal/adapter/repository/memory"
	redisRepo "github.com/iho/gobudget/internal/adapter/repository/redis"
	"github.com/iho/gobudget/internal/aggregation"
	"github.com/iho/gobudget/internal/currency"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/infrastructure/config"
	applog "github.com/iho/gobudget/internal/infrastructure/logger"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
	"github.com/iho/gobudget/internal/infrastructure/redis"
	"github.com/iho/gobudget/internal/reference"
	"github.com/iho/gobudget/internal/usecase"
)

const (
	redisConnectTimeout = 30 * time.Second
	sweepInterval       = time.Minute
	limiterIdle         = 10 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := applog.New(applog.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "budget-server"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, metrics.New(), prometheus.DefaultGatherer); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}

	logger.Info().Msg("server stopped")
}

// run serves the API and the metrics endpoint until ctx is cancelled or
// either server fails, then shuts both down gracefully.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) error {
	a, err := newApp(ctx, cfg, logger, m)
	if err != nil {
		return err
	}
	defer a.close()

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		return serve(apiServer)
	})
	g.Go(func() error {
		logger.Info().Str("port", cfg.MetricsPort).Msg("starting metrics server")
		return serve(metricsServer)
	})
	g.Go(func() error {
		a.sweep(gctx, sweepInterval, logger)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		return errors.Join(apiServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
	})

	return g.Wait()
}

func serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// app is the wired HTTP handler plus the resources that outlive requests.
type app struct {
	handler     http.Handler
	redisClient *goredis.Client
	sweepers    []func() int
}

func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger, m *metrics.Metrics) (*app, error) {
	tables := reference.Defaults()
	if cfg.ReferenceDataPath != "" {
		loaded, err := reference.Load(cfg.ReferenceDataPath)
		if err != nil {
			return nil, err
		}
		tables = loaded
		logger.Info().Str("path", cfg.ReferenceDataPath).Int("currencies", tables.Currencies.Len()).Msg("loaded reference data")
	}

	if err := domain.ValidateCurrency(cfg.DisplayCurrency, tables.Currencies); err != nil {
		return nil, fmt.Errorf("DISPLAY_CURRENCY: %w", err)
	}

	converter := currency.NewConverter(tables.Currencies, logger, m)
	engine := aggregation.NewEngine(converter, tables.Categories, logger, m)

	var seed []domain.Transaction
	if cfg.SeedDemoData {
		seed = reference.DemoTransactions()
		logger.Info().Int("transactions", len(seed)).Msg("seeded demo transactions")
	}
	repo := memory.NewTransactionRepository(seed...)

	a := &app{}

	var dashboardCache usecase.Cache
	var idempotencyStore usecase.IdempotencyStore
	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, cfg.RedisURL, redisConnectTimeout, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redisClient = client
		dashboardCache = redisRepo.NewCache(client)
		idempotencyStore = redisRepo.NewIdempotencyStore(client)
		logger.Info().Msg("connected to redis")
	} else {
		store := cache.NewStore(cfg.CacheSize, cfg.CacheTTL)
		idempotency := cache.NewIdempotencyStore(cfg.CacheSize)
		dashboardCache, idempotencyStore = store, idempotency
		a.sweepers = append(a.sweepers, store.CleanExpired, idempotency.CleanExpired)
		logger.Info().Int("size", cfg.CacheSize).Msg("using in-process cache")
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		a.sweepers = append(a.sweepers, func() int { return rateLimiter.CleanupLimiters(limiterIdle) })
	}

	transactionUC := usecase.NewTransactionUseCase(repo, memory.NewULIDGenerator(), tables.Currencies, tables.Categories, m, logger)
	dashboardUC := usecase.NewDashboardUseCase(repo, engine, logger,
		usecase.WithCache(dashboardCache, cfg.CacheTTL),
		usecase.WithRecorder(m),
	)

	a.handler = httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		DashboardHandler:   handler.NewDashboardHandler(dashboardUC, tables.Currencies, converter, cfg.DisplayCurrency),
		ReferenceHandler:   handler.NewReferenceHandler(converter, tables.Categories),
		HealthHandler:      handler.NewHealthHandler(a.redisClient),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        rateLimiter,
		Logger:             logger,
	})

	return a, nil
}

// sweep periodically evicts expired in-process cache entries and idle
// rate limiters until ctx is done.
func (a *app) sweep(ctx context.Context, every time.Duration, logger zerolog.Logger) {
	if len(a.sweepers) == 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := 0
			for _, s := range a.sweepers {
				removed += s()
			}
			logger.Debug().Int("removed", removed).Msg("swept expired entries")
		}
	}
}

func (a *app) close() {
	if a.redisClient != nil {
		a.redisClient.Close()
	}
}
