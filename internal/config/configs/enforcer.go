package configs

import "time"

// Enforcer holds the cadence of the periodic enforcement triggers. Setting
// Enabled to false disables the scheduler entirely; the batch operations
// remain invocable through the HTTP surface.
type Enforcer struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// DaypartingInterval is the period of the dayparting pass.
	DaypartingInterval time.Duration `env:"DAYPARTING_INTERVAL" envDefault:"1m"`
	// BudgetInterval is the period of the budget-enforcement pass.
	BudgetInterval time.Duration `env:"BUDGET_INTERVAL" envDefault:"5m"`
}
