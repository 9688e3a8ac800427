package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PricingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPricingRepo(db *dbpg.DB) *PricingRepository {
	return &PricingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PricingRepository) List(ctx context.Context) ([]domain.PricingRate, error) {
	query := `SELECT category, hourly_rate FROM pricing_rates ORDER BY category`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()

	var res []domain.PricingRate
	for rows.Next() {
		var rate domain.PricingRate
		if err = rows.Scan(&rate.Category, &rate.HourlyRate); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		res = append(res, rate)
	}

	return res, rows.Err()
}

func (r *PricingRepository) GetByCategory(ctx context.Context, c domain.VehicleCategory) (*domain.PricingRate, error) {
	query := `SELECT category, hourly_rate FROM pricing_rates WHERE category = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, c)
	if err != nil {
		return nil, fmt.Errorf("get rate: %w", err)
	}

	var rate domain.PricingRate
	if err = row.Scan(&rate.Category, &rate.HourlyRate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %q", domain.ErrRateNotFound, c)
		}
		return nil, fmt.Errorf("scan rate: %w", err)
	}

	return &rate, nil
}

func (r *PricingRepository) UpdateRate(ctx context.Context, c domain.VehicleCategory, hourlyRate float64) error {
	query := `UPDATE pricing_rates SET hourly_rate = $2 WHERE category = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, c, hourlyRate)
	if err != nil {
		return fmt.Errorf("update rate: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rate rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: category %q", domain.ErrRateNotFound, c)
	}

	return nil
}
