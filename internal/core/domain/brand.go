package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand represents an advertiser whose budgets cap the spend of all its
// campaigns. Budgets are stored in integer cents.
type Brand struct {
	ID            uuid.UUID
	Name          string
	DailyBudget   int64
	MonthlyBudget int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
