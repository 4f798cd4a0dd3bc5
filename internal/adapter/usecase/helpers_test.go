package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pacekeeper/internal/adapter/memory"
	"pacekeeper/internal/core/domain"
)

// mondayNoon is a known Monday (2024-01-01) at 12:00 UTC.
var mondayNoon = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T, instant time.Time) (*Engine, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	engine := NewEngine(repo, domain.FixedClock{Instant: instant}, testLogger(), nil)
	return engine, repo
}

func seedBrand(t *testing.T, e *Engine, daily, monthly int64) *domain.Brand {
	t.Helper()
	brand := &domain.Brand{
		Name:          "brand-" + uuid.NewString(),
		DailyBudget:   daily,
		MonthlyBudget: monthly,
	}
	require.NoError(t, e.CreateBrand(context.Background(), brand))
	return brand
}

func seedCampaign(t *testing.T, e *Engine, brand *domain.Brand, defaultSchedule bool) *domain.Campaign {
	t.Helper()
	campaign := &domain.Campaign{
		BrandID: brand.ID,
		Name:    "campaign-" + uuid.NewString(),
	}
	require.NoError(t, e.CreateCampaign(context.Background(), campaign, defaultSchedule))
	return campaign
}

func seedSchedule(t *testing.T, e *Engine, campaignID uuid.UUID, day domain.Weekday, startHour, endHour int) {
	t.Helper()
	require.NoError(t, e.CreateSchedule(context.Background(), &domain.Schedule{
		CampaignID: campaignID,
		DayOfWeek:  day,
		StartTime:  domain.TimeOfDay{Hour: startHour},
		EndTime:    domain.TimeOfDay{Hour: endHour},
		IsActive:   true,
	}))
}

func getCampaign(t *testing.T, e *Engine, id uuid.UUID) *domain.Campaign {
	t.Helper()
	campaign, err := e.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	require.True(t, campaign.Consistent(), "pause fields out of sync for %s", id)
	return campaign
}

func recordSpend(t *testing.T, e *Engine, campaignID uuid.UUID, amount int64) {
	t.Helper()
	_, err := e.RecordSpend(context.Background(), spendInput(campaignID, amount))
	require.NoError(t, err)
}
