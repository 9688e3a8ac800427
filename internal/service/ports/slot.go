package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
)

type SlotRepo interface {
	List(ctx context.Context) ([]domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	CheckIn(ctx context.Context, id int64, v domain.Vehicle) (*domain.Slot, error)
	// CheckOut frees the slot and appends the billed transaction as one atomic
	// step; there is no observable state where the slot is free but the stay
	// is unrecorded.
	CheckOut(ctx context.Context, id int64, txnID string, at time.Time) (*domain.Transaction, error)
}
