package domain

import (
	"time"

	"github.com/google/uuid"
)

// Weekday numbers days with Monday = 0 through Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf converts a time.Weekday (Sunday = 0) to the Monday-based numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// TimeOfDay is a clock time within a day, seconds precision. Hour 24 with
// zero minutes and seconds is the end-of-day sentinel, valid only as a
// window end.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayOf extracts the wall-clock time of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Seconds returns the offset from midnight in seconds.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Seconds() < other.Seconds()
}

// Schedule is a dayparting rule: the campaign may run on DayOfWeek between
// StartTime (inclusive) and EndTime (exclusive). Windows never cross
// midnight; StartTime < EndTime.
type Schedule struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	DayOfWeek  Weekday
	StartTime  TimeOfDay
	EndTime    TimeOfDay
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Contains reports whether tod falls within [StartTime, EndTime).
func (s *Schedule) Contains(tod TimeOfDay) bool {
	return !tod.Before(s.StartTime) && tod.Before(s.EndTime)
}
