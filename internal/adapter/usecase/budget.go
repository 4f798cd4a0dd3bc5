package usecase

import (
	"context"
	"log/slog"

	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
)

// checkLimits decides whether the snapshot violates its brand's caps. The
// daily cap is checked before the monthly one and the first violation wins.
// Comparison is inclusive: spend equal to the cap already counts as exceeded.
func (e *Engine) checkLimits(t *port.CampaignTotals) (domain.PauseReason, bool) {
	if t.DailySpend >= t.DailyBudget {
		return domain.ReasonDailyBudgetExceeded, true
	}
	if t.MonthlySpend >= t.MonthlyBudget {
		return domain.ReasonMonthlyBudgetExceeded, true
	}
	return "", false
}

// EnforceBudgets checks every ACTIVE campaign against its brand's caps and
// pauses violators. One campaign's failure is counted and logged, never
// propagated; the batch always runs to completion unless the context is
// cancelled between campaigns.
func (e *Engine) EnforceBudgets(ctx context.Context) domain.BudgetSummary {
	var summary domain.BudgetSummary
	defer func() {
		e.metrics.BatchRunsTotal.WithLabelValues("budgets").Inc()
		e.metrics.BatchErrorsTotal.WithLabelValues("budgets").Add(float64(summary.Errors))
		e.logger.Info("budget enforcement completed",
			slog.Int("checked", summary.Checked),
			slog.Int("paused_daily", summary.PausedDaily),
			slog.Int("paused_monthly", summary.PausedMonth),
			slog.Int("errors", summary.Errors),
		)
	}()

	campaigns, err := e.repo.ListCampaignsByStatus(ctx, domain.StatusActive)
	if err != nil {
		e.logger.Error("listing active campaigns failed", slog.Any("error", err))
		summary.Errors++
		return summary
	}

	for i := range campaigns {
		if ctx.Err() != nil {
			// committed transitions stay committed; the next tick resumes
			return summary
		}
		camp := &campaigns[i]
		summary.Checked++

		brand, err := e.repo.GetBrand(ctx, camp.BrandID)
		if err != nil {
			e.logger.Error("budget check failed",
				slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
			summary.Errors++
			continue
		}

		totals := &port.CampaignTotals{
			CampaignID:    camp.ID,
			Status:        camp.Status,
			DailySpend:    camp.DailySpend,
			MonthlySpend:  camp.MonthlySpend,
			DailyBudget:   brand.DailyBudget,
			MonthlyBudget: brand.MonthlyBudget,
		}
		reason, violated := e.checkLimits(totals)
		if !violated {
			continue
		}

		paused, err := e.pause(ctx, camp.ID, reason)
		if err != nil {
			e.logger.Error("pausing campaign failed",
				slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
			summary.Errors++
			continue
		}
		if !paused {
			continue
		}
		switch reason {
		case domain.ReasonDailyBudgetExceeded:
			summary.PausedDaily++
		case domain.ReasonMonthlyBudgetExceeded:
			summary.PausedMonth++
		}
	}
	return summary
}
