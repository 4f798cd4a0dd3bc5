package usecase

import (
	"context"
	"log/slog"

	"pacekeeper/internal/core/domain"
)

// ResetDaily zeroes the daily counter of every campaign, then offers
// reactivation to every campaign paused with DAILY_BUDGET_EXCEEDED. The
// counters are zeroed first so reactivation is evaluated against the fresh
// totals. Campaigns paused for any other reason are left alone. Running the
// reset twice in a row changes nothing the second time.
func (e *Engine) ResetDaily(ctx context.Context) domain.ResetSummary {
	return e.reset(ctx, "daily", e.repo.ResetDailySpends, domain.ReasonDailyBudgetExceeded)
}

// ResetMonthly is the monthly counterpart of ResetDaily, keyed on the
// monthly counter and MONTHLY_BUDGET_EXCEEDED.
func (e *Engine) ResetMonthly(ctx context.Context) domain.ResetSummary {
	return e.reset(ctx, "monthly", e.repo.ResetMonthlySpends, domain.ReasonMonthlyBudgetExceeded)
}

func (e *Engine) reset(
	ctx context.Context,
	window string,
	zero func(context.Context) (int, error),
	reason domain.PauseReason,
) domain.ResetSummary {
	var summary domain.ResetSummary
	defer func() {
		op := "reset_" + window
		e.metrics.BatchRunsTotal.WithLabelValues(op).Inc()
		e.metrics.BatchErrorsTotal.WithLabelValues(op).Add(float64(summary.Errors))
		e.logger.Info("spend reset completed",
			slog.String("window", window),
			slog.Int("reset", summary.Reset),
			slog.Int("reactivated", summary.Reactivated),
			slog.Int("errors", summary.Errors),
		)
	}()

	reset, err := zero(ctx)
	if err != nil {
		e.logger.Error("zeroing spend counters failed",
			slog.String("window", window), slog.Any("error", err))
		summary.Errors++
		return summary
	}
	summary.Reset = reset

	paused, err := e.repo.ListCampaignsByPauseReason(ctx, reason)
	if err != nil {
		e.logger.Error("listing paused campaigns failed",
			slog.String("window", window), slog.Any("error", err))
		summary.Errors++
		return summary
	}

	now := e.now()
	for i := range paused {
		if ctx.Err() != nil {
			return summary
		}
		camp := &paused[i]
		check, err := e.isWithinSchedule(ctx, camp.ID, now)
		if err != nil {
			e.logger.Error("schedule lookup failed",
				slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
			summary.Errors++
			continue
		}
		activated, err := e.activateEligible(ctx, camp.ID, check)
		if err != nil {
			e.logger.Error("reactivating campaign failed",
				slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
			summary.Errors++
			continue
		}
		if activated {
			e.metrics.ActivationsTotal.WithLabelValues("reset_" + window).Inc()
			summary.Reactivated++
		}
	}
	return summary
}
