package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

// pause moves an ACTIVE campaign to PAUSED with the given reason. The status
// guard is enforced by the repository at commit time, so a campaign that is
// already paused keeps its original reason no matter how many triggers race
// here. Returns whether the transition was applied.
func (e *Engine) pause(ctx context.Context, id uuid.UUID, reason domain.PauseReason) (bool, error) {
	at := e.now()
	applied, err := e.repo.PauseCampaign(ctx, id, reason, at)
	if err != nil {
		return false, err
	}
	if applied {
		e.metrics.PausesTotal.WithLabelValues(string(reason)).Inc()
		e.logger.Info("campaign paused",
			slog.String("campaign_id", id.String()),
			slog.String("reason", string(reason)),
			slog.Time("paused_at", at),
		)
	}
	return applied, nil
}

// activateEligible commits the ACTIVE transition when the already-computed
// schedule check passes; budget eligibility is re-validated by the repository
// inside the committing write.
func (e *Engine) activateEligible(ctx context.Context, id uuid.UUID, check scheduleCheck) (bool, error) {
	if !check.within {
		return false, nil
	}
	activated, err := e.repo.ActivateCampaign(ctx, id)
	if err != nil {
		return false, err
	}
	if activated {
		e.logger.Info("campaign activated", slog.String("campaign_id", id.String()))
	}
	return activated, nil
}

// Activate attempts the gated transition to ACTIVE: running totals must be
// strictly below both brand caps and the current instant must fall inside a
// schedule window. Safe to call speculatively; an ineligible or already
// active campaign is left unchanged. With force set it becomes the
// administrative escape hatch that bypasses both checks.
func (e *Engine) Activate(ctx context.Context, id uuid.UUID, force bool) (bool, error) {
	if _, err := e.repo.GetCampaign(ctx, id); err != nil {
		return false, err
	}
	if force {
		if err := e.repo.ForceActivateCampaign(ctx, id); err != nil {
			return false, err
		}
		e.metrics.ActivationsTotal.WithLabelValues("manual").Inc()
		e.logger.Warn("campaign force-activated", slog.String("campaign_id", id.String()))
		return true, nil
	}
	check, err := e.isWithinSchedule(ctx, id, e.now())
	if err != nil {
		return false, err
	}
	activated, err := e.activateEligible(ctx, id, check)
	if err != nil {
		return false, err
	}
	if activated {
		e.metrics.ActivationsTotal.WithLabelValues("manual").Inc()
	}
	return activated, nil
}

// PauseManual pauses a campaign with reason MANUAL on behalf of an
// administrator. Pausing an already paused campaign is a no-op.
func (e *Engine) PauseManual(ctx context.Context, id uuid.UUID) error {
	if _, err := e.repo.GetCampaign(ctx, id); err != nil {
		return err
	}
	_, err := e.pause(ctx, id, domain.ReasonManual)
	return err
}
