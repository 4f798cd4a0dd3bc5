package domain

import (
	"time"

	"github.com/google/uuid"
)

// SpendType is the nominal window of a spend record. Note that every spend
// increments both the daily and the monthly running total regardless of its
// declared type; the type is informational.
type SpendType string

const (
	SpendDaily   SpendType = "DAILY"
	SpendMonthly SpendType = "MONTHLY"
)

// Valid reports whether t is a known spend type.
func (t SpendType) Valid() bool {
	return t == SpendDaily || t == SpendMonthly
}

// Spend is an immutable ledger entry: an amount in integer cents spent by a
// campaign on a calendar date. Entries are never edited or deleted.
type Spend struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	Amount      int64
	SpendDate   time.Time // date only; time-of-day is ignored
	SpendType   SpendType
	Description string
	CreatedAt   time.Time
}
