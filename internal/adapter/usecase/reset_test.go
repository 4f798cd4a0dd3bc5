package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pacekeeper/internal/core/domain"
)

// Budget pause, daily reset, reactivation: the full recovery cycle.
func TestResetDailyReactivates(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 1_000_000)
	campaign := seedCampaign(t, engine, brand, true)

	recordSpend(t, engine, campaign.ID, 10_500)
	require.True(t, getCampaign(t, engine, campaign.ID).PausedFor(domain.ReasonDailyBudgetExceeded))

	summary := engine.ResetDaily(context.Background())
	require.Equal(t, 1, summary.Reset)
	require.Equal(t, 1, summary.Reactivated)
	require.Zero(t, summary.Errors)

	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.IsActive())
	require.Nil(t, got.PauseReason)
	require.Nil(t, got.PausedAt)
	require.Zero(t, got.DailySpend)
	require.Equal(t, int64(10_500), got.MonthlySpend) // monthly counter untouched
}

func TestResetDailyIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 1_000_000)
	campaign := seedCampaign(t, engine, brand, true)
	recordSpend(t, engine, campaign.ID, 10_000)

	first := engine.ResetDaily(context.Background())
	require.Equal(t, 1, first.Reactivated)
	afterFirst := getCampaign(t, engine, campaign.ID)

	second := engine.ResetDaily(context.Background())
	require.Zero(t, second.Reactivated)
	require.Zero(t, second.Errors)

	afterSecond := getCampaign(t, engine, campaign.ID)
	require.Equal(t, afterFirst.Status, afterSecond.Status)
	require.Equal(t, afterFirst.DailySpend, afterSecond.DailySpend)
	require.Equal(t, afterFirst.MonthlySpend, afterSecond.MonthlySpend)
}

// A campaign paused for the monthly budget is not touched by the daily
// reset; only the monthly reset can bring it back.
func TestResetDailyLeavesMonthlyPause(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 1_000_000, 5_000)
	campaign := seedCampaign(t, engine, brand, true)

	recordSpend(t, engine, campaign.ID, 5_000)
	require.True(t, getCampaign(t, engine, campaign.ID).PausedFor(domain.ReasonMonthlyBudgetExceeded))

	daily := engine.ResetDaily(context.Background())
	require.Zero(t, daily.Reactivated)
	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.PausedFor(domain.ReasonMonthlyBudgetExceeded))
	require.Zero(t, got.DailySpend) // counter still zeroed

	monthly := engine.ResetMonthly(context.Background())
	require.Equal(t, 1, monthly.Reactivated)
	require.True(t, getCampaign(t, engine, campaign.ID).IsActive())
}

// The counter is zeroed before reactivation is attempted, so eligibility is
// judged against the fresh totals — but the other window's cap still binds.
func TestResetDailyHonorsMonthlyCap(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 1_000, 5_000)
	campaign := seedCampaign(t, engine, brand, true)

	// five daily violations accumulate to the monthly cap
	for i := 0; i < 5; i++ {
		recordSpend(t, engine, campaign.ID, 1_000)
		if i < 4 {
			engine.ResetDaily(context.Background())
		}
	}
	require.True(t, getCampaign(t, engine, campaign.ID).IsPaused())

	summary := engine.ResetDaily(context.Background())
	require.Zero(t, summary.Reactivated)

	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.IsPaused())
	require.Zero(t, got.DailySpend)
	require.Equal(t, int64(5_000), got.MonthlySpend)
}

// Reactivation after a reset also re-validates the schedule window.
func TestResetDailyHonorsSchedule(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 1_000, 1_000_000)
	campaign := seedCampaign(t, engine, brand, false)
	seedSchedule(t, engine, campaign.ID, domain.Tuesday, 9, 18) // not today

	recordSpend(t, engine, campaign.ID, 1_000)
	require.True(t, getCampaign(t, engine, campaign.ID).PausedFor(domain.ReasonDailyBudgetExceeded))

	summary := engine.ResetDaily(context.Background())
	require.Zero(t, summary.Reactivated)
	require.True(t, getCampaign(t, engine, campaign.ID).PausedFor(domain.ReasonDailyBudgetExceeded))
}

func TestResetMonthlyLeavesDailyPause(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 1_000, 1_000_000)
	campaign := seedCampaign(t, engine, brand, true)

	recordSpend(t, engine, campaign.ID, 1_500)
	require.True(t, getCampaign(t, engine, campaign.ID).PausedFor(domain.ReasonDailyBudgetExceeded))

	summary := engine.ResetMonthly(context.Background())
	require.Zero(t, summary.Reactivated)

	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.PausedFor(domain.ReasonDailyBudgetExceeded))
	require.Zero(t, got.MonthlySpend)
	require.Equal(t, int64(1_500), got.DailySpend)
}

func TestResetLeavesManualPause(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, true)

	require.NoError(t, engine.PauseManual(context.Background(), campaign.ID))

	engine.ResetDaily(context.Background())
	engine.ResetMonthly(context.Background())
	require.True(t, getCampaign(t, engine, campaign.ID).PausedFor(domain.ReasonManual))
}
