package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"pacekeeper/internal/core/domain"
	"pacekeeper/internal/core/port"
)

// Repository implements port.Repository using pgxpool for PostgreSQL. All
// single-campaign mutations run as one statement or one transaction against
// that campaign's row, so concurrent operations on different campaigns never
// contend and concurrent operations on the same campaign serialize on the
// row lock.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const campaignColumns = `id, brand_id, name, status, pause_reason, paused_at, daily_spend, monthly_spend, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		reason *string
	)
	err := row.Scan(&c.ID, &c.BrandID, &c.Name, &c.Status, &reason, &c.PausedAt,
		&c.DailySpend, &c.MonthlySpend, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		r := domain.PauseReason(*reason)
		c.PauseReason = &r
	}
	return &c, nil
}

// CreateBrand inserts a brand row.
func (r *Repository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO brands (id, name, daily_budget, monthly_budget, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())`, b.ID, b.Name, b.DailyBudget, b.MonthlyBudget)
	return err
}

// GetBrand returns a brand by id.
func (r *Repository) GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx, `SELECT id, name, daily_budget, monthly_budget, created_at, updated_at
FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBrandNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateCampaign inserts a campaign row.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
(id, brand_id, name, status, pause_reason, paused_at, daily_spend, monthly_spend, created_at, updated_at)
VALUES ($1, $2, $3, $4, NULL, NULL, $5, $6, now(), now())`,
		c.ID, c.BrandID, c.Name, c.Status, c.DailySpend, c.MonthlySpend)
	return err
}

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) listCampaigns(ctx context.Context, where string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns `+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ListCampaigns returns every campaign.
func (r *Repository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return r.listCampaigns(ctx, "")
}

// ListCampaignsByStatus returns campaigns with the given status.
func (r *Repository) ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return r.listCampaigns(ctx, "WHERE status = $1", status)
}

// ListCampaignsByPauseReason returns campaigns paused with the given reason.
func (r *Repository) ListCampaignsByPauseReason(ctx context.Context, reason domain.PauseReason) ([]domain.Campaign, error) {
	return r.listCampaigns(ctx, "WHERE status = 'PAUSED' AND pause_reason = $1", reason)
}

func timeOfDay(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Seconds()) * 1_000_000, Valid: true}
}

func fromPgTime(t pgtype.Time) domain.TimeOfDay {
	sec := int(t.Microseconds / 1_000_000)
	return domain.TimeOfDay{Hour: sec / 3600, Minute: sec / 60 % 60, Second: sec % 60}
}

// CreateSchedule inserts a schedule row.
func (r *Repository) CreateSchedule(ctx context.Context, s *domain.Schedule) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO schedules
(id, campaign_id, day_of_week, start_time, end_time, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		s.ID, s.CampaignID, int(s.DayOfWeek), timeOfDay(s.StartTime), timeOfDay(s.EndTime), s.IsActive)
	return err
}

// ActiveSchedulesForDay returns the active schedule rows of a campaign for
// one weekday, ordered by start time.
func (r *Repository) ActiveSchedulesForDay(ctx context.Context, campaignID uuid.UUID, day domain.Weekday) ([]domain.Schedule, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, day_of_week, start_time, end_time, is_active, created_at, updated_at
FROM schedules WHERE campaign_id = $1 AND day_of_week = $2 AND is_active ORDER BY start_time`,
		campaignID, int(day))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Schedule, error) {
		var (
			s          domain.Schedule
			start, end pgtype.Time
		)
		err := row.Scan(&s.ID, &s.CampaignID, &s.DayOfWeek, &start, &end, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return domain.Schedule{}, err
		}
		s.StartTime = fromPgTime(start)
		s.EndTime = fromPgTime(end)
		return s, nil
	})
}

// AppendSpend inserts the ledger entry and increments both running totals in
// one transaction. The campaign row is locked first so the increment and the
// returned totals form a consistent snapshot for the caller's budget check.
func (r *Repository) AppendSpend(ctx context.Context, spend *domain.Spend) (*port.CampaignTotals, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	totals := &port.CampaignTotals{CampaignID: spend.CampaignID}
	err = tx.QueryRow(ctx, `SELECT c.status, b.daily_budget, b.monthly_budget
FROM campaigns c JOIN brands b ON b.id = c.brand_id
WHERE c.id = $1 FOR UPDATE OF c`, spend.CampaignID).
		Scan(&totals.Status, &totals.DailyBudget, &totals.MonthlyBudget)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrCampaignNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO spends
(id, campaign_id, amount, spend_date, spend_type, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		spend.ID, spend.CampaignID, spend.Amount, spend.SpendDate, spend.SpendType, spend.Description, spend.CreatedAt)
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `UPDATE campaigns
SET daily_spend = daily_spend + $2, monthly_spend = monthly_spend + $2, updated_at = now()
WHERE id = $1
RETURNING daily_spend, monthly_spend`, spend.CampaignID, spend.Amount).
		Scan(&totals.DailySpend, &totals.MonthlySpend)
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// ListSpends returns the ledger entries of a campaign, newest first.
func (r *Repository) ListSpends(ctx context.Context, campaignID uuid.UUID) ([]domain.Spend, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, amount, spend_date, spend_type, description, created_at
FROM spends WHERE campaign_id = $1 ORDER BY spend_date DESC, created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Spend, error) {
		var s domain.Spend
		err := row.Scan(&s.ID, &s.CampaignID, &s.Amount, &s.SpendDate, &s.SpendType, &s.Description, &s.CreatedAt)
		return s, err
	})
}

// PauseCampaign transitions ACTIVE -> PAUSED. The status guard lives in the
// WHERE clause, so the check happens at commit time and a racing pause with a
// different reason loses cleanly instead of overwriting.
func (r *Repository) PauseCampaign(ctx context.Context, id uuid.UUID, reason domain.PauseReason, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = 'PAUSED', pause_reason = $2, paused_at = $3, updated_at = now()
WHERE id = $1 AND status = 'ACTIVE'`, id, reason, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RefreshSchedulePauseReason rewrites the pause reason of a campaign the
// dayparting pass itself paused. The guard keeps budget and manual pauses
// out of reach.
func (r *Repository) RefreshSchedulePauseReason(ctx context.Context, id uuid.UUID, reason domain.PauseReason) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET pause_reason = $2, updated_at = now()
WHERE id = $1 AND status = 'PAUSED'
  AND pause_reason IN ('OUTSIDE_SCHEDULE', 'NO_SCHEDULE')
  AND pause_reason <> $2`, id, reason)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ActivateCampaign clears the pause fields only when both running totals are
// strictly below the brand's caps at commit time.
func (r *Repository) ActivateCampaign(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns c
SET status = 'ACTIVE', pause_reason = NULL, paused_at = NULL, updated_at = now()
FROM brands b
WHERE c.id = $1 AND b.id = c.brand_id
  AND c.daily_spend < b.daily_budget AND c.monthly_spend < b.monthly_budget`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ForceActivateCampaign clears the pause fields unconditionally.
func (r *Repository) ForceActivateCampaign(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = 'ACTIVE', pause_reason = NULL, paused_at = NULL, updated_at = now()
WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// ResetDailySpends zeroes the daily counter on every campaign.
func (r *Repository) ResetDailySpends(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET daily_spend = 0, updated_at = now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ResetMonthlySpends zeroes the monthly counter on every campaign.
func (r *Repository) ResetMonthlySpends(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET monthly_spend = 0, updated_at = now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Ping verifies database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
