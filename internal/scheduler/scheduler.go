package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pacekeeper/internal/core/port"
)

// Config holds the trigger intervals. Dayparting and budget enforcement run
// on fixed tickers; resets fire at midnight in the reference timezone, the
// monthly reset only when the new day is the first of the month.
type Config struct {
	DaypartingInterval time.Duration
	BudgetInterval     time.Duration
}

// DefaultConfig mirrors the production cadence: dayparting every minute,
// budget enforcement every five.
func DefaultConfig() Config {
	return Config{
		DaypartingInterval: time.Minute,
		BudgetInterval:     5 * time.Minute,
	}
}

// Scheduler is the periodic trigger that drives the enforcement engine. It
// owns no enforcement logic; every operation it invokes is equally callable
// on demand through the HTTP surface.
type Scheduler struct {
	engine port.Engine
	cfg    Config
	logger *slog.Logger
	wg     sync.WaitGroup
	done   chan struct{}
}

// New creates a scheduler for the given engine.
func New(engine port.Engine, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		engine: engine,
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start launches the trigger goroutines.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cfg.DaypartingInterval > 0 {
		s.wg.Add(1)
		go s.daypartingLoop(ctx)
	}
	if s.cfg.BudgetInterval > 0 {
		s.wg.Add(1)
		go s.budgetLoop(ctx)
	}
	s.wg.Add(1)
	go s.resetLoop(ctx)

	s.logger.Info("scheduler started",
		slog.Duration("dayparting_interval", s.cfg.DaypartingInterval),
		slog.Duration("budget_interval", s.cfg.BudgetInterval),
	)
}

// Stop stops the scheduler and waits for in-flight runs to finish. Batches
// commit per campaign, so stopping mid-batch leaves consistent state.
func (s *Scheduler) Stop() {
	close(s.done)
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) daypartingLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.DaypartingInterval)
	defer ticker.Stop()

	s.engine.EnforceDayparting(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.engine.EnforceDayparting(ctx)
		}
	}
}

func (s *Scheduler) budgetLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.BudgetInterval)
	defer ticker.Stop()

	s.engine.EnforceBudgets(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.engine.EnforceBudgets(ctx)
		}
	}
}

// resetLoop sleeps until the next midnight UTC, runs the daily reset, and
// additionally the monthly reset when the new day opens a month.
func (s *Scheduler) resetLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		now := time.Now().UTC()
		next := nextMidnight(now)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.done:
			timer.Stop()
			return
		case <-timer.C:
			s.engine.ResetDaily(ctx)
			if next.Day() == 1 {
				s.engine.ResetMonthly(ctx)
			}
		}
	}
}

func nextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
