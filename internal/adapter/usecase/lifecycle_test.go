package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pacekeeper/internal/core/domain"
)

func TestPauseManualAndActivate(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, true)

	require.NoError(t, engine.PauseManual(context.Background(), campaign.ID))
	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.PausedFor(domain.ReasonManual))
	require.Equal(t, mondayNoon, *got.PausedAt)

	activated, err := engine.Activate(context.Background(), campaign.ID, false)
	require.NoError(t, err)
	require.True(t, activated)

	got = getCampaign(t, engine, campaign.ID)
	require.True(t, got.IsActive())
	require.Nil(t, got.PauseReason)
	require.Nil(t, got.PausedAt)
}

func TestPauseManualTwiceKeepsFirstTimestamp(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, true)

	require.NoError(t, engine.PauseManual(context.Background(), campaign.ID))
	first := getCampaign(t, engine, campaign.ID)

	require.NoError(t, engine.PauseManual(context.Background(), campaign.ID))
	second := getCampaign(t, engine, campaign.ID)
	require.Equal(t, *first.PausedAt, *second.PausedAt)
}

// Racing pauses with different reasons: exactly one wins, the recorded
// reason is never a mixture and never overwritten.
func TestConcurrentPausesFirstReasonWins(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, true)

	reasons := []domain.PauseReason{
		domain.ReasonDailyBudgetExceeded,
		domain.ReasonMonthlyBudgetExceeded,
		domain.ReasonOutsideSchedule,
		domain.ReasonManual,
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	wg.Add(len(reasons) * 4)
	for i := 0; i < len(reasons)*4; i++ {
		reason := reasons[i%len(reasons)]
		go func() {
			defer wg.Done()
			ok, err := engine.pause(context.Background(), campaign.ID, reason)
			require.NoError(t, err)
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, applied)
	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.IsPaused())
	require.Contains(t, reasons, *got.PauseReason)
}

// Activation never transitions a campaign whose spend meets either cap,
// regardless of schedule eligibility.
func TestActivateRefusesOverBudget(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 1_000, 100_000)
	campaign := seedCampaign(t, engine, brand, true) // 24/7 schedule

	recordSpend(t, engine, campaign.ID, 1_000)
	require.True(t, getCampaign(t, engine, campaign.ID).IsPaused())

	activated, err := engine.Activate(context.Background(), campaign.ID, false)
	require.NoError(t, err)
	require.False(t, activated)
	require.True(t, getCampaign(t, engine, campaign.ID).IsPaused())
}

func TestActivateRefusesOutsideSchedule(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, false)
	seedSchedule(t, engine, campaign.ID, domain.Tuesday, 9, 18)

	require.NoError(t, engine.PauseManual(context.Background(), campaign.ID))

	activated, err := engine.Activate(context.Background(), campaign.ID, false)
	require.NoError(t, err)
	require.False(t, activated)
}

// The force path is the emergency escape hatch: it bypasses both checks.
func TestForceActivateBypassesEligibility(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 1_000, 100_000)
	campaign := seedCampaign(t, engine, brand, false) // no schedule either

	recordSpend(t, engine, campaign.ID, 5_000)
	require.True(t, getCampaign(t, engine, campaign.ID).IsPaused())

	activated, err := engine.Activate(context.Background(), campaign.ID, true)
	require.NoError(t, err)
	require.True(t, activated)

	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.IsActive())
	require.Equal(t, int64(5_000), got.DailySpend) // totals survive the override
}

func TestActivateUnknownCampaign(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	_, err := engine.Activate(context.Background(), uuid.New(), false)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)

	err = engine.PauseManual(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestCreateCampaignStartsActive(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, true)

	got := getCampaign(t, engine, campaign.ID)
	require.True(t, got.IsActive())
	require.Zero(t, got.DailySpend)
	require.Zero(t, got.MonthlySpend)

	// the default schedule keeps it eligible at any instant
	summary := engine.EnforceDayparting(context.Background())
	require.Zero(t, summary.Paused)
}

func TestCreateCampaignUnknownBrand(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	err := engine.CreateCampaign(context.Background(), &domain.Campaign{
		BrandID: uuid.New(),
		Name:    "orphan",
	}, false)
	require.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestCreateScheduleValidation(t *testing.T) {
	engine, _ := newTestEngine(t, mondayNoon)
	brand := seedBrand(t, engine, 10_000, 100_000)
	campaign := seedCampaign(t, engine, brand, false)

	err := engine.CreateSchedule(context.Background(), &domain.Schedule{
		CampaignID: campaign.ID,
		DayOfWeek:  domain.Monday,
		StartTime:  domain.TimeOfDay{Hour: 18},
		EndTime:    domain.TimeOfDay{Hour: 9},
		IsActive:   true,
	})
	require.True(t, domain.IsValidation(err))

	err = engine.CreateSchedule(context.Background(), &domain.Schedule{
		CampaignID: campaign.ID,
		DayOfWeek:  domain.Weekday(7),
		StartTime:  domain.TimeOfDay{Hour: 9},
		EndTime:    domain.TimeOfDay{Hour: 18},
		IsActive:   true,
	})
	require.True(t, domain.IsValidation(err))
}
