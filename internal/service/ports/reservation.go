package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error)
	// UpdateStatus is a compare-and-set: the write succeeds only if the stored
	// status still equals from. at becomes the row's updated_at, so the caller
	// and the row agree on the transition time.
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus, at time.Time) error
	CancelOverdue(ctx context.Context, now time.Time) ([]*domain.Reservation, error)
}
