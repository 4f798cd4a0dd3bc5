package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

// RecordSpendInput carries one spend-tracking request. Date defaults to the
// clock's current day and SpendType to DAILY when left zero.
type RecordSpendInput struct {
	CampaignID  uuid.UUID
	Amount      int64
	Date        time.Time
	SpendType   domain.SpendType
	Description string
}

// RecordSpendResult surfaces the created ledger entry and the campaign state
// that resulted from the synchronous budget check.
type RecordSpendResult struct {
	Spend       domain.Spend
	Status      domain.CampaignStatus
	PauseReason *domain.PauseReason
}

// Engine is the inbound port: the campaign lifecycle enforcement operations
// invoked by the HTTP adapter and the periodic trigger. Every batch operation
// isolates per-campaign failures and reports them in its summary instead of
// aborting.
type Engine interface {
	// RecordSpend appends a ledger entry, updates both running totals and
	// synchronously enforces the brand's budget caps on the campaign.
	RecordSpend(ctx context.Context, in RecordSpendInput) (*RecordSpendResult, error)

	// EnforceBudgets checks every ACTIVE campaign against its brand's caps.
	EnforceBudgets(ctx context.Context) domain.BudgetSummary

	// EnforceDayparting reconciles every campaign with its schedule windows.
	EnforceDayparting(ctx context.Context) domain.DaypartingSummary

	// ResetDaily zeroes daily counters, then re-drives activation for
	// campaigns paused with DAILY_BUDGET_EXCEEDED. ResetMonthly is the
	// monthly counterpart.
	ResetDaily(ctx context.Context) domain.ResetSummary
	ResetMonthly(ctx context.Context) domain.ResetSummary

	// Activate attempts the gated ACTIVE transition; with force it becomes
	// the administrative override that bypasses eligibility.
	Activate(ctx context.Context, id uuid.UUID, force bool) (bool, error)

	// PauseManual pauses a campaign with reason MANUAL.
	PauseManual(ctx context.Context, id uuid.UUID) error

	// Provisioning surface used by the administrative HTTP adapter.
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign, defaultSchedule bool) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CreateSchedule(ctx context.Context, schedule *domain.Schedule) error
	ListSpends(ctx context.Context, campaignID uuid.UUID) ([]domain.Spend, error)

	Healthy(ctx context.Context) error
}
