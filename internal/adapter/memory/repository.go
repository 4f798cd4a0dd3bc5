package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
)

// Repository is an in-memory port.Repository with the same commit-time
// semantics as the PostgreSQL adapter: every mutation is applied under the
// store lock as one read-modify-write, so status guards and budget guards
// are checked against the state being committed. It backs the engine tests
// and the dev mode.
type Repository struct {
	mu        sync.Mutex
	brands    map[uuid.UUID]*domain.Brand
	campaigns map[uuid.UUID]*domain.Campaign
	schedules map[uuid.UUID][]domain.Schedule
	spends    map[uuid.UUID][]domain.Spend
}

// NewRepository returns an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		brands:    make(map[uuid.UUID]*domain.Brand),
		campaigns: make(map[uuid.UUID]*domain.Campaign),
		schedules: make(map[uuid.UUID][]domain.Schedule),
		spends:    make(map[uuid.UUID][]domain.Spend),
	}
}

// CreateBrand stores a brand.
func (r *Repository) CreateBrand(_ context.Context, b *domain.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.brands[b.ID] = &cp
	return nil
}

// GetBrand returns a brand by id.
func (r *Repository) GetBrand(_ context.Context, id uuid.UUID) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	cp := *b
	return &cp, nil
}

// CreateCampaign stores a campaign.
func (r *Repository) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

func copyCampaign(c *domain.Campaign) domain.Campaign {
	cp := *c
	if c.PauseReason != nil {
		reason := *c.PauseReason
		cp.PauseReason = &reason
	}
	if c.PausedAt != nil {
		at := *c.PausedAt
		cp.PausedAt = &at
	}
	return cp
}

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	cp := copyCampaign(c)
	return &cp, nil
}

func (r *Repository) list(filter func(*domain.Campaign) bool) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if filter(c) {
			out = append(out, copyCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// ListCampaigns returns every campaign.
func (r *Repository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(*domain.Campaign) bool { return true }), nil
}

// ListCampaignsByStatus returns campaigns with the given status.
func (r *Repository) ListCampaignsByStatus(_ context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(c *domain.Campaign) bool { return c.Status == status }), nil
}

// ListCampaignsByPauseReason returns campaigns paused with the given reason.
func (r *Repository) ListCampaignsByPauseReason(_ context.Context, reason domain.PauseReason) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(c *domain.Campaign) bool { return c.PausedFor(reason) }), nil
}

// CreateSchedule stores a schedule row.
func (r *Repository) CreateSchedule(_ context.Context, s *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[s.CampaignID] = append(r.schedules[s.CampaignID], *s)
	return nil
}

// ActiveSchedulesForDay returns the active schedule rows of a campaign for
// one weekday, ordered by start time.
func (r *Repository) ActiveSchedulesForDay(_ context.Context, campaignID uuid.UUID, day domain.Weekday) ([]domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Schedule
	for _, s := range r.schedules[campaignID] {
		if s.DayOfWeek == day && s.IsActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

// AppendSpend inserts the ledger entry and increments both totals under the
// store lock, returning the post-increment snapshot.
func (r *Repository) AppendSpend(_ context.Context, spend *domain.Spend) (*port.CampaignTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[spend.CampaignID]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	b, ok := r.brands[c.BrandID]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	r.spends[spend.CampaignID] = append(r.spends[spend.CampaignID], *spend)
	c.DailySpend += spend.Amount
	c.MonthlySpend += spend.Amount
	return &port.CampaignTotals{
		CampaignID:    c.ID,
		Status:        c.Status,
		DailySpend:    c.DailySpend,
		MonthlySpend:  c.MonthlySpend,
		DailyBudget:   b.DailyBudget,
		MonthlyBudget: b.MonthlyBudget,
	}, nil
}

// ListSpends returns the ledger entries of a campaign, newest first.
func (r *Repository) ListSpends(_ context.Context, campaignID uuid.UUID) ([]domain.Spend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.spends[campaignID]
	out := make([]domain.Spend, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// PauseCampaign transitions ACTIVE -> PAUSED; an existing pause wins.
func (r *Repository) PauseCampaign(_ context.Context, id uuid.UUID, reason domain.PauseReason, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok || c.Status != domain.StatusActive {
		return false, nil
	}
	c.Status = domain.StatusPaused
	c.PauseReason = &reason
	c.PausedAt = &at
	return true, nil
}

// RefreshSchedulePauseReason rewrites a schedule-pause reason; budget and
// manual pauses are out of reach.
func (r *Repository) RefreshSchedulePauseReason(_ context.Context, id uuid.UUID, reason domain.PauseReason) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok || !c.PausedForSchedule() || *c.PauseReason == reason {
		return false, nil
	}
	c.PauseReason = &reason
	return true, nil
}

// ActivateCampaign clears the pause fields when both totals are strictly
// below the brand's caps at commit time.
func (r *Repository) ActivateCampaign(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return false, nil
	}
	b, ok := r.brands[c.BrandID]
	if !ok {
		return false, nil
	}
	if c.DailySpend >= b.DailyBudget || c.MonthlySpend >= b.MonthlyBudget {
		return false, nil
	}
	c.Status = domain.StatusActive
	c.PauseReason = nil
	c.PausedAt = nil
	return true, nil
}

// ForceActivateCampaign clears the pause fields unconditionally.
func (r *Repository) ForceActivateCampaign(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	c.Status = domain.StatusActive
	c.PauseReason = nil
	c.PausedAt = nil
	return nil
}

// ResetDailySpends zeroes the daily counter on every campaign.
func (r *Repository) ResetDailySpends(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.campaigns {
		c.DailySpend = 0
	}
	return len(r.campaigns), nil
}

// ResetMonthlySpends zeroes the monthly counter on every campaign.
func (r *Repository) ResetMonthlySpends(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.campaigns {
		c.MonthlySpend = 0
	}
	return len(r.campaigns), nil
}

// Ping always succeeds.
func (r *Repository) Ping(context.Context) error { return nil }
