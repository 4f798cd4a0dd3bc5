package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
)

// CampaignTotals is the consistent snapshot produced by AppendSpend: the
// campaign's post-increment running totals together with its brand's caps,
// all observed inside the same per-campaign transaction.
type CampaignTotals struct {
	CampaignID    uuid.UUID
	Status        domain.CampaignStatus
	DailySpend    int64
	MonthlySpend  int64
	DailyBudget   int64
	MonthlyBudget int64
}

// Repository is the outbound persistence port. Implementations must scope
// every status/spend mutation to a single campaign row and apply it as an
// atomic read-modify-write; conditional transitions (pause, activate) are
// checked at commit time, not merely at read time.
type Repository interface {
	CreateBrand(ctx context.Context, brand *domain.Brand) error
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)

	CreateCampaign(ctx context.Context, campaign *domain.Campaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	ListCampaignsByPauseReason(ctx context.Context, reason domain.PauseReason) ([]domain.Campaign, error)

	CreateSchedule(ctx context.Context, schedule *domain.Schedule) error
	ActiveSchedulesForDay(ctx context.Context, campaignID uuid.UUID, day domain.Weekday) ([]domain.Schedule, error)

	// AppendSpend inserts the immutable ledger entry and increments the
	// campaign's daily and monthly totals by spend.Amount in one
	// transaction, returning the post-increment snapshot.
	AppendSpend(ctx context.Context, spend *domain.Spend) (*CampaignTotals, error)
	ListSpends(ctx context.Context, campaignID uuid.UUID) ([]domain.Spend, error)

	// PauseCampaign transitions ACTIVE -> PAUSED with the given reason.
	// The status guard is part of the committing write, so a concurrent
	// pause with a different reason is suppressed rather than overwritten.
	// Returns whether the transition was applied.
	PauseCampaign(ctx context.Context, id uuid.UUID, reason domain.PauseReason, at time.Time) (bool, error)

	// RefreshSchedulePauseReason rewrites the pause reason of a campaign
	// that is paused by the dayparting pass itself (OUTSIDE_SCHEDULE or
	// NO_SCHEDULE) when the applicable reason changes, e.g. the schedule
	// day rolls over. The guard is part of the committing write; budget
	// and manual pauses are never touched. Returns whether a row changed.
	RefreshSchedulePauseReason(ctx context.Context, id uuid.UUID, reason domain.PauseReason) (bool, error)

	// ActivateCampaign clears the pause fields if, at commit time, both
	// running totals are strictly below the brand's caps. Returns whether
	// the row was updated. Schedule eligibility is the engine's concern.
	ActivateCampaign(ctx context.Context, id uuid.UUID) (bool, error)

	// ForceActivateCampaign clears the pause fields unconditionally. It
	// backs the administrative escape hatch and bypasses all eligibility.
	ForceActivateCampaign(ctx context.Context, id uuid.UUID) error

	// ResetDailySpends zeroes daily_spend on every campaign, returning the
	// number of campaigns touched. ResetMonthlySpends is symmetric.
	ResetDailySpends(ctx context.Context) (int, error)
	ResetMonthlySpends(ctx context.Context) (int, error)

	Ping(ctx context.Context) error
}
