package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

// scheduleCheck is the outcome of one dayparting lookup. hasSchedule
// distinguishes "outside today's window" from "no eligible window today",
// which determines the pause reason.
type scheduleCheck struct {
	within      bool
	hasSchedule bool
}

// isWithinSchedule evaluates the campaign's dayparting rules at the given
// instant. No active row for the weekday means the campaign may not run that
// day. When several active rows exist for the same weekday only the first in
// (day_of_week, start_time) order is consulted, matching the single-match
// lookup of the reference behavior. The window is inclusive of its start and
// exclusive of its end.
func (e *Engine) isWithinSchedule(ctx context.Context, campaignID uuid.UUID, instant time.Time) (scheduleCheck, error) {
	day := domain.WeekdayOf(instant)
	schedules, err := e.repo.ActiveSchedulesForDay(ctx, campaignID, day)
	if err != nil {
		return scheduleCheck{}, err
	}
	if len(schedules) == 0 {
		return scheduleCheck{}, nil
	}
	tod := domain.TimeOfDayOf(instant)
	return scheduleCheck{within: schedules[0].Contains(tod), hasSchedule: true}, nil
}

// EnforceDayparting reconciles every campaign with its schedule windows.
// Campaigns outside their window are paused with OUTSIDE_SCHEDULE, or with
// NO_SCHEDULE when no eligible window exists for the day. Campaigns inside
// their window that were paused by a previous dayparting pass are offered
// reactivation, which re-validates budget eligibility. Budget and manual
// pauses are never touched here.
func (e *Engine) EnforceDayparting(ctx context.Context) domain.DaypartingSummary {
	var summary domain.DaypartingSummary
	defer func() {
		e.metrics.BatchRunsTotal.WithLabelValues("dayparting").Inc()
		e.metrics.BatchErrorsTotal.WithLabelValues("dayparting").Add(float64(summary.Errors))
		e.logger.Info("dayparting enforcement completed",
			slog.Int("checked", summary.Checked),
			slog.Int("activated", summary.Activated),
			slog.Int("paused", summary.Paused),
			slog.Int("errors", summary.Errors),
		)
	}()

	campaigns, err := e.repo.ListCampaigns(ctx)
	if err != nil {
		e.logger.Error("listing campaigns failed", slog.Any("error", err))
		summary.Errors++
		return summary
	}

	now := e.now()
	for i := range campaigns {
		if ctx.Err() != nil {
			return summary
		}
		camp := &campaigns[i]
		summary.Checked++

		check, err := e.isWithinSchedule(ctx, camp.ID, now)
		if err != nil {
			e.logger.Error("schedule lookup failed",
				slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
			summary.Errors++
			continue
		}

		switch {
		case check.within && camp.PausedForSchedule():
			activated, err := e.activateEligible(ctx, camp.ID, check)
			if err != nil {
				e.logger.Error("reactivating campaign failed",
					slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
				summary.Errors++
				continue
			}
			if activated {
				e.metrics.ActivationsTotal.WithLabelValues("dayparting").Inc()
				summary.Activated++
			}
		case !check.within && camp.IsActive():
			reason := domain.ReasonNoSchedule
			if check.hasSchedule {
				reason = domain.ReasonOutsideSchedule
			}
			paused, err := e.pause(ctx, camp.ID, reason)
			if err != nil {
				e.logger.Error("pausing campaign failed",
					slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
				summary.Errors++
				continue
			}
			if paused {
				summary.Paused++
			}
		case !check.within && camp.PausedForSchedule():
			// the applicable reason can change while paused, e.g. the day
			// rolls over from "outside today's window" to "no window today"
			reason := domain.ReasonNoSchedule
			if check.hasSchedule {
				reason = domain.ReasonOutsideSchedule
			}
			if _, err := e.repo.RefreshSchedulePauseReason(ctx, camp.ID, reason); err != nil {
				e.logger.Error("refreshing pause reason failed",
					slog.String("campaign_id", camp.ID.String()), slog.Any("error", err))
				summary.Errors++
			}
		}
	}
	return summary
}
