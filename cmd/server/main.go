package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/iho/spendlog/internal/adapter/http"
	"github.com/iho/spendlog/internal/adapter/http/handler"
	"github.com/iho/spendlog/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/spendlog/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/spendlog/internal/adapter/repository/redis"
	"github.com/iho/spendlog/internal/adapter/repository/sqlite"
	"github.com/iho/spendlog/internal/infrastructure/config"
	"github.com/iho/spendlog/internal/infrastructure/logger"
	"github.com/iho/spendlog/internal/infrastructure/metrics"
	"github.com/iho/spendlog/internal/infrastructure/postgres"
	"github.com/iho/spendlog/internal/infrastructure/redis"
	"github.com/iho/spendlog/internal/usecase"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx := context.Background()

	appMetrics := metrics.New()

	repo, checks, cleanup, err := buildRepository(ctx, cfg, appMetrics)
	if err != nil {
		return err
	}
	defer cleanup()

	expenseUC := usecase.NewExpenseUseCase(repo, appMetrics)
	reportUC := usecase.NewReportUseCase(repo, appMetrics)

	routerCfg := httpAdapter.RouterConfig{
		ExpenseHandler: handler.NewExpenseHandler(expenseUC),
		ReportHandler:  handler.NewReportHandler(reportUC),
		ExportHandler:  handler.NewExportHandler(expenseUC, appMetrics),
		Logger:         logger,
		IdempotencyTTL: cfg.IdempotencyTTL,
	}

	// Redis is optional; without it mutating requests are simply not
	// replayed.
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer redisClient.Close()

		routerCfg.IdempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		checks = append(checks, handler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		logger.Info().Msg("idempotency store enabled")
	}

	routerCfg.HealthHandler = handler.NewHealthHandler(checks...)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(sigCtx)

	g.Go(func() error {
		logger.Info().
			Str("port", cfg.HTTPPort).
			Str("driver", cfg.StorageDriver).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

// buildRepository constructs the expense store named by STORAGE_DRIVER and
// the readiness checks that go with it.
func buildRepository(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (usecase.ExpenseRepository, []handler.Check, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		store := memory.NewStore()
		if cfg.SeedData {
			if err := store.Seed(ctx, time.Now()); err != nil {
				return nil, nil, nil, fmt.Errorf("seeding memory store: %w", err)
			}
			log.Info().Msg("memory store seeded with sample expenses")
		}
		return store, nil, func() {}, nil

	case config.DriverSQLite:
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		checks := []handler.Check{{Name: "sqlite", Ping: store.Ping}}
		return store, checks, func() { store.Close() }, nil

	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, nil, fmt.Errorf("running migrations: %w", err)
		}

		pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
			DatabaseURL: cfg.DatabaseURL,
			MaxConns:    cfg.DatabaseMaxConns,
			MinConns:    cfg.DatabaseMinConns,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		checks := []handler.Check{{Name: "postgres", Ping: pool.Ping}}
		return postgresRepo.NewExpenseRepository(pool, m), checks, pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
