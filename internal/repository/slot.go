package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) List(ctx context.Context) ([]domain.Slot, error) {
	query := `SELECT id, occupied, plate_number, category, check_in_time
			  FROM slots
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, *s)
	}

	return res, rows.Err()
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	query := `SELECT id, occupied, plate_number, category, check_in_time
			  FROM slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlot(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return s, nil
}

// CheckIn claims the slot for the vehicle. The row lock serializes concurrent
// check-ins on the same slot id: exactly one wins, the rest see the occupied
// flag. Slots with different ids lock different rows and do not block each
// other.
func (r *SlotRepository) CheckIn(ctx context.Context, id int64, v domain.Vehicle) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var occupied bool
	lockQuery := `SELECT occupied FROM slots WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&occupied); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	if occupied {
		return nil, domain.ErrSlotOccupied
	}

	query := `UPDATE slots
			  SET occupied = TRUE, plate_number = $2, category = $3, check_in_time = $4
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, v.PlateNumber, v.Category, v.CheckInTime); err != nil {
		return nil, fmt.Errorf("occupy slot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit check-in: %w", err)
	}

	vehicle := v
	return &domain.Slot{ID: id, Occupied: true, Vehicle: &vehicle}, nil
}

// CheckOut reads the occupant, resolves its rate, appends the billed
// transaction and clears the slot inside one database transaction. Either the
// whole sequence commits or the slot stays occupied; a freed slot with no
// ledger row is never observable.
func (r *SlotRepository) CheckOut(ctx context.Context, id int64, txnID string, at time.Time) (*domain.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		occupied    bool
		plate       sql.NullString
		category    sql.NullString
		checkInTime sql.NullTime
	)
	lockQuery := `SELECT occupied, plate_number, category, check_in_time
				  FROM slots
				  WHERE id = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&occupied, &plate, &category, &checkInTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	if !occupied {
		return nil, domain.ErrSlotNotOccupied
	}

	var hourlyRate float64
	rateQuery := `SELECT hourly_rate FROM pricing_rates WHERE category = $1`
	if err = tx.QueryRowContext(ctx, rateQuery, category.String).Scan(&hourlyRate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %q", domain.ErrRateNotFound, category.String)
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}

	hours, err := domain.DurationHours(checkInTime.Time, at)
	if err != nil {
		return nil, err
	}
	cost, err := domain.ComputeCost(checkInTime.Time, at, hourlyRate)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:            txnID,
		PlateNumber:   plate.String,
		Category:      domain.VehicleCategory(category.String),
		SlotID:        id,
		CheckInTime:   checkInTime.Time,
		CheckOutTime:  at,
		DurationHours: hours,
		Cost:          cost,
		CreatedAt:     at,
	}

	insertQuery := `INSERT INTO transactions
					(id, plate_number, category, slot_id, check_in_time, check_out_time, duration_hours, cost, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		txn.ID, txn.PlateNumber, txn.Category, txn.SlotID,
		txn.CheckInTime, txn.CheckOutTime, txn.DurationHours, txn.Cost, txn.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	clearQuery := `UPDATE slots
				   SET occupied = FALSE, plate_number = NULL, category = NULL, check_in_time = NULL
				   WHERE id = $1`
	if _, err = tx.ExecContext(ctx, clearQuery, id); err != nil {
		return nil, fmt.Errorf("clear slot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit check-out: %w", err)
	}

	return txn, nil
}

func scanSlot(scan func(dest ...any) error) (*domain.Slot, error) {
	var (
		s           domain.Slot
		plate       sql.NullString
		category    sql.NullString
		checkInTime sql.NullTime
	)
	if err := scan(&s.ID, &s.Occupied, &plate, &category, &checkInTime); err != nil {
		return nil, err
	}

	if s.Occupied {
		s.Vehicle = &domain.Vehicle{
			PlateNumber: plate.String,
			Category:    domain.VehicleCategory(category.String),
			CheckInTime: checkInTime.Time,
		}
	}

	return &s, nil
}
