package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekdayOfMondayBased(t *testing.T) {
	// 2024-01-01 was a Monday
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.Equal(t, Weekday(i), WeekdayOf(monday.AddDate(0, 0, i)))
	}
	require.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestScheduleContainsHalfOpenWindow(t *testing.T) {
	s := Schedule{
		StartTime: TimeOfDay{Hour: 9},
		EndTime:   TimeOfDay{Hour: 18},
	}

	require.True(t, s.Contains(TimeOfDay{Hour: 9}), "start is inclusive")
	require.True(t, s.Contains(TimeOfDay{Hour: 12, Minute: 30}))
	require.True(t, s.Contains(TimeOfDay{Hour: 17, Minute: 59, Second: 59}))
	require.False(t, s.Contains(TimeOfDay{Hour: 18}), "end is exclusive")
	require.False(t, s.Contains(TimeOfDay{Hour: 8, Minute: 59, Second: 59}))

	allDay := Schedule{
		StartTime: TimeOfDay{},
		EndTime:   TimeOfDay{Hour: 24}, // end-of-day sentinel
	}
	require.True(t, allDay.Contains(TimeOfDay{}))
	require.True(t, allDay.Contains(TimeOfDay{Hour: 23, Minute: 59, Second: 59}))
}

func TestCampaignConsistent(t *testing.T) {
	reason := ReasonManual
	now := time.Now()

	ok := Campaign{Status: StatusActive}
	require.True(t, ok.Consistent())

	paused := Campaign{Status: StatusPaused, PauseReason: &reason, PausedAt: &now}
	require.True(t, paused.Consistent())

	missingReason := Campaign{Status: StatusPaused, PausedAt: &now}
	require.False(t, missingReason.Consistent())

	activeWithReason := Campaign{Status: StatusActive, PauseReason: &reason}
	require.False(t, activeWithReason.Consistent())
}
