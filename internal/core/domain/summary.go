package domain

// BudgetSummary reports the outcome of one budget-enforcement batch.
type BudgetSummary struct {
	Checked     int `json:"checked"`
	PausedDaily int `json:"paused_daily"`
	PausedMonth int `json:"paused_monthly"`
	Errors      int `json:"errors"`
}

// DaypartingSummary reports the outcome of one dayparting batch.
type DaypartingSummary struct {
	Checked   int `json:"checked"`
	Activated int `json:"activated"`
	Paused    int `json:"paused"`
	Errors    int `json:"errors"`
}

// ResetSummary reports the outcome of a daily or monthly counter reset.
type ResetSummary struct {
	Reset       int `json:"reset"`
	Reactivated int `json:"reactivated"`
	Errors      int `json:"errors"`
}
