package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
	"pacekeeper/internal/metrics"
)

// Engine implements port.Engine: the campaign lifecycle enforcement engine.
// It combines the spend ledger, budget enforcer, dayparting evaluator, state
// machine and reset coordinator over a single repository. All time decisions
// come from the injected clock.
type Engine struct {
	repo    port.Repository
	clock   domain.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewEngine creates an engine. The clock defaults to UTC when nil.
func NewEngine(repo port.Repository, clock domain.Clock, logger *slog.Logger, m *metrics.Metrics) *Engine {
	if clock == nil {
		clock = domain.UTCClock{}
	}
	if m == nil {
		m = metrics.New()
	}
	return &Engine{repo: repo, clock: clock, logger: logger, metrics: m}
}

// CreateBrand stores a new brand after validating its budget caps.
func (e *Engine) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	if brand.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if brand.DailyBudget < 0 {
		return &domain.ValidationError{Field: "daily_budget", Reason: "must not be negative"}
	}
	if brand.MonthlyBudget < 0 {
		return &domain.ValidationError{Field: "monthly_budget", Reason: "must not be negative"}
	}
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	return e.repo.CreateBrand(ctx, brand)
}

// GetBrand returns a brand by id.
func (e *Engine) GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	return e.repo.GetBrand(ctx, id)
}

// CreateCampaign stores a new campaign, ACTIVE with zero spend. When
// defaultSchedule is set it also provisions an always-eligible 24/7 schedule
// so the next dayparting pass does not immediately park the campaign with
// NO_SCHEDULE.
func (e *Engine) CreateCampaign(ctx context.Context, campaign *domain.Campaign, defaultSchedule bool) error {
	if campaign.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := e.repo.GetBrand(ctx, campaign.BrandID); err != nil {
		return err
	}
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	campaign.Status = domain.StatusActive
	campaign.PauseReason = nil
	campaign.PausedAt = nil
	campaign.DailySpend = 0
	campaign.MonthlySpend = 0
	if err := e.repo.CreateCampaign(ctx, campaign); err != nil {
		return err
	}
	if !defaultSchedule {
		return nil
	}
	for day := domain.Monday; day <= domain.Sunday; day++ {
		sched := &domain.Schedule{
			ID:         uuid.New(),
			CampaignID: campaign.ID,
			DayOfWeek:  day,
			StartTime:  domain.TimeOfDay{},
			// end-of-day sentinel; the window end is exclusive, so 24:00
			// keeps the day's final second inside
			EndTime:  domain.TimeOfDay{Hour: 24},
			IsActive: true,
		}
		if err := e.repo.CreateSchedule(ctx, sched); err != nil {
			return err
		}
	}
	e.logger.Info("provisioned default schedule", slog.String("campaign_id", campaign.ID.String()))
	return nil
}

// GetCampaign returns a campaign by id.
func (e *Engine) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return e.repo.GetCampaign(ctx, id)
}

// CreateSchedule stores a dayparting rule after validating its window.
func (e *Engine) CreateSchedule(ctx context.Context, schedule *domain.Schedule) error {
	if schedule.DayOfWeek < domain.Monday || schedule.DayOfWeek > domain.Sunday {
		return &domain.ValidationError{Field: "day_of_week", Reason: "must be 0..6"}
	}
	if !schedule.StartTime.Before(schedule.EndTime) {
		return &domain.ValidationError{Field: "end_time", Reason: "must be after start_time"}
	}
	if _, err := e.repo.GetCampaign(ctx, schedule.CampaignID); err != nil {
		return err
	}
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	return e.repo.CreateSchedule(ctx, schedule)
}

// ListSpends returns the ledger entries of a campaign, newest first.
func (e *Engine) ListSpends(ctx context.Context, campaignID uuid.UUID) ([]domain.Spend, error) {
	if _, err := e.repo.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return e.repo.ListSpends(ctx, campaignID)
}

// Healthy reports whether the backing store is reachable.
func (e *Engine) Healthy(ctx context.Context) error {
	return e.repo.Ping(ctx)
}

func (e *Engine) now() time.Time {
	return e.clock.Now()
}
