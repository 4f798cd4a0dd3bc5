package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
)

// RecordSpend appends an immutable ledger entry and increments the campaign's
// daily and monthly running totals by the amount in one per-campaign
// transaction. Every spend counts toward both windows regardless of its
// declared type; that is the tracking contract, not an accident. The budget
// check runs synchronously on the totals observed in the same transaction.
func (e *Engine) RecordSpend(ctx context.Context, in port.RecordSpendInput) (*port.RecordSpendResult, error) {
	if in.Amount <= 0 {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	spendType := in.SpendType
	if spendType == "" {
		spendType = domain.SpendDaily
	}
	if !spendType.Valid() {
		return nil, &domain.ValidationError{Field: "spend_type", Reason: "must be DAILY or MONTHLY"}
	}
	date := in.Date
	if date.IsZero() {
		date = e.now()
	}

	spend := &domain.Spend{
		ID:          uuid.New(),
		CampaignID:  in.CampaignID,
		Amount:      in.Amount,
		SpendDate:   date,
		SpendType:   spendType,
		Description: in.Description,
		CreatedAt:   e.now(),
	}

	totals, err := e.repo.AppendSpend(ctx, spend)
	if err != nil {
		return nil, err
	}

	e.metrics.SpendsRecorded.Inc()
	e.metrics.SpendAmount.Add(float64(in.Amount))
	e.logger.Info("spend recorded",
		slog.String("campaign_id", in.CampaignID.String()),
		slog.Int64("amount", in.Amount),
		slog.Int64("daily_spend", totals.DailySpend),
		slog.Int64("monthly_spend", totals.MonthlySpend),
	)

	result := &port.RecordSpendResult{Spend: *spend, Status: totals.Status}

	if reason, violated := e.checkLimits(totals); violated {
		paused, err := e.pause(ctx, in.CampaignID, reason)
		if err != nil {
			return nil, err
		}
		if paused {
			result.Status = domain.StatusPaused
			result.PauseReason = &reason
		} else if camp, err := e.repo.GetCampaign(ctx, in.CampaignID); err == nil {
			// already paused by a concurrent trigger; report its state
			result.Status = camp.Status
			result.PauseReason = camp.PauseReason
		}
	}

	return result, nil
}
