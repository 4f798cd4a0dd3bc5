package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusActive CampaignStatus = "ACTIVE"
	StatusPaused CampaignStatus = "PAUSED"
)

// PauseReason records why a campaign was paused. It is set iff the campaign
// is PAUSED and gates which reset or dayparting pass may later reactivate it.
type PauseReason string

const (
	ReasonDailyBudgetExceeded   PauseReason = "DAILY_BUDGET_EXCEEDED"
	ReasonMonthlyBudgetExceeded PauseReason = "MONTHLY_BUDGET_EXCEEDED"
	ReasonOutsideSchedule       PauseReason = "OUTSIDE_SCHEDULE"
	ReasonNoSchedule            PauseReason = "NO_SCHEDULE"
	ReasonManual                PauseReason = "MANUAL"
)

// Campaign is the unit under enforcement. Spend totals are running counters
// in integer cents, reset by the reset coordinator; they are not derived from
// the ledger at read time.
type Campaign struct {
	ID           uuid.UUID
	BrandID      uuid.UUID
	Name         string
	Status       CampaignStatus
	PauseReason  *PauseReason
	PausedAt     *time.Time
	DailySpend   int64
	MonthlySpend int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the campaign is currently ACTIVE.
func (c *Campaign) IsActive() bool {
	return c.Status == StatusActive
}

// IsPaused reports whether the campaign is currently PAUSED.
func (c *Campaign) IsPaused() bool {
	return c.Status == StatusPaused
}

// PausedFor reports whether the campaign is paused with the given reason.
func (c *Campaign) PausedFor(reason PauseReason) bool {
	return c.Status == StatusPaused && c.PauseReason != nil && *c.PauseReason == reason
}

// PausedForSchedule reports whether the campaign is paused by the dayparting
// pass, i.e. with reason OUTSIDE_SCHEDULE or NO_SCHEDULE.
func (c *Campaign) PausedForSchedule() bool {
	return c.PausedFor(ReasonOutsideSchedule) || c.PausedFor(ReasonNoSchedule)
}

// Consistent reports whether status, pause_reason and paused_at agree:
// all three pause fields are set together or not at all.
func (c *Campaign) Consistent() bool {
	if c.Status == StatusPaused {
		return c.PauseReason != nil && c.PausedAt != nil
	}
	return c.PauseReason == nil && c.PausedAt == nil
}
