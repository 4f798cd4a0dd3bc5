package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: two brands with a handful of campaigns each, a
// weekday business-hours schedule per campaign and some initial spend.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	brands := []struct {
		name          string
		dailyBudget   int64
		monthlyBudget int64
	}{
		{"Acme Retail", 10_000, 250_000},    // 100.00 / 2500.00
		{"Globex Media", 50_000, 1_200_000}, // 500.00 / 12000.00
	}

	for _, b := range brands {
		brandID := uuid.New()
		_, err := pool.Exec(ctx, `INSERT INTO brands (id, name, daily_budget, monthly_budget, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now()) ON CONFLICT (name) DO NOTHING`,
			brandID, b.name, b.dailyBudget, b.monthlyBudget)
		if err != nil {
			return err
		}

		for i := 1; i <= 3; i++ {
			campaignID := uuid.New()
			name := fmt.Sprintf("%s campaign %d", b.name, i)
			_, err = pool.Exec(ctx, `INSERT INTO campaigns
(id, brand_id, name, status, daily_spend, monthly_spend, created_at, updated_at)
SELECT $1, id, $2, 'ACTIVE', 0, 0, now(), now() FROM brands WHERE name = $3
ON CONFLICT (brand_id, name) DO NOTHING`, campaignID, name, b.name)
			if err != nil {
				return err
			}

			// weekday business hours, 09:00-18:00
			for day := 0; day <= 4; day++ {
				_, err = pool.Exec(ctx, `INSERT INTO schedules
(id, campaign_id, day_of_week, start_time, end_time, is_active, created_at, updated_at)
SELECT $1, c.id, $2, '09:00', '18:00', TRUE, now(), now()
FROM campaigns c JOIN brands b ON b.id = c.brand_id WHERE c.name = $3 AND b.name = $4
ON CONFLICT (campaign_id, day_of_week, start_time, end_time) DO NOTHING`,
					uuid.New(), day, name, b.name)
				if err != nil {
					return err
				}
			}

			// the ledger entry and its counter bump commit together; the
			// NOT EXISTS guard keeps a re-run from duplicating seed spends
			_, err = pool.Exec(ctx, `WITH ins AS (
    INSERT INTO spends (id, campaign_id, amount, spend_date, spend_type, description, created_at)
    SELECT $1, c.id, $2, $3, 'DAILY', 'seed spend', now()
    FROM campaigns c JOIN brands b ON b.id = c.brand_id
    WHERE c.name = $4 AND b.name = $5
      AND NOT EXISTS (SELECT 1 FROM spends s WHERE s.campaign_id = c.id AND s.description = 'seed spend')
    RETURNING campaign_id, amount
)
UPDATE campaigns SET daily_spend = daily_spend + ins.amount,
    monthly_spend = monthly_spend + ins.amount, updated_at = now()
FROM ins WHERE campaigns.id = ins.campaign_id`,
				uuid.New(), int64(500*i), time.Now().UTC().Format("2006-01-02"), name, b.name)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
