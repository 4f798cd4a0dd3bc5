package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "pacekeeper/internal/adapter/http"
	"pacekeeper/internal/adapter/memory"
	"pacekeeper/internal/adapter/postgres"
	"pacekeeper/internal/adapter/usecase"
	"pacekeeper/internal/config"
	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
	"pacekeeper/internal/db"
	"pacekeeper/internal/metrics"
	"pacekeeper/internal/scheduler"
)

// main is the entry point of the pacekeeper service. It loads configuration,
// optionally runs database migrations, initializes the repository and the
// enforcement engine, starts the periodic triggers and the HTTP server. On
// receiving a termination signal it gracefully shuts everything down.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.Repository
	if cfg.Env == "dev" {
		// dev mode runs entirely in memory, no database required
		repo = memory.NewRepository()
		logger.Info("using in-memory repository")
	} else {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo data seeded")
			}
		}

		repo = postgres.NewRepository(pool)
	}

	m := metrics.New()
	engine := usecase.NewEngine(repo, domain.UTCClock{}, logger, m)

	var sched *scheduler.Scheduler
	if cfg.Enforcer.Enabled {
		sched = scheduler.New(engine, scheduler.Config{
			DaypartingInterval: cfg.Enforcer.DaypartingInterval,
			BudgetInterval:     cfg.Enforcer.BudgetInterval,
		}, logger)
		sched.Start(ctx)
	}

	handler := httpadapter.NewHandler(engine, logger, m.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
