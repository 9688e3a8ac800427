package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// TransactionRepository reads the ledger. Rows are written only by the slot
// check-out transaction; there is no update or delete path.
type TransactionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTransactionRepo(db *dbpg.DB) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	query := `SELECT id, plate_number, category, slot_id, check_in_time, check_out_time, duration_hours, cost, created_at
			  FROM transactions
			  WHERE ($1 = '' OR plate_number = $1)
			    AND ($2::timestamptz IS NULL OR check_out_time >= $2)
			    AND ($3::timestamptz IS NULL OR check_out_time <= $3)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.Plate, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err = rows.Scan(
			&t.ID, &t.PlateNumber, &t.Category, &t.SlotID,
			&t.CheckInTime, &t.CheckOutTime, &t.DurationHours, &t.Cost, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
