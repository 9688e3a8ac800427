package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService owns the reservation status machine. A reservation books
// future intent only: creation checks that the slot id exists but deliberately
// not that the slot is currently free or unreserved, current occupancy and a
// future booking live on different timelines. Reconciling the two at check-in
// time is the caller's job.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	slotRepo        ports.SlotRepo
	logger          logger.Logger
	now             func() time.Time
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	slotRepo ports.SlotRepo,
	logger logger.Logger,
	now func() time.Time,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		logger:          logger,
		now:             now,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if strings.TrimSpace(input.RequesterID) == "" {
		return nil, fmt.Errorf("%w: requester_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.PlateNumber) == "" {
		return nil, fmt.Errorf("%w: plate number is required", domain.ErrValidation)
	}
	if input.ScheduledFor.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_for is required", domain.ErrValidation)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle category %q", domain.ErrValidation, input.Category)
	}

	if _, err := s.slotRepo.GetByID(ctx, input.SlotID); err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	now := s.now().UTC()
	reservation := &domain.Reservation{
		ID:           uuid.New().String(),
		RequesterID:  input.RequesterID,
		PlateNumber:  strings.TrimSpace(input.PlateNumber),
		Category:     input.Category,
		SlotID:       input.SlotID,
		ScheduledFor: input.ScheduledFor,
		Status:       domain.ReservationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("requester_id", reservation.RequesterID),
		logger.Int64("slot_id", reservation.SlotID),
	)

	return reservation, nil
}

// SetStatus validates the requested transition against the status machine and
// applies it with a compare-and-set, so a stale read can never overwrite a
// concurrent transition.
func (s *ReservationService) SetStatus(ctx context.Context, id string, next domain.ReservationStatus) (*domain.Reservation, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, next)
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
	}

	at := s.now().UTC()
	if err = s.reservationRepo.UpdateStatus(ctx, id, current.Status, next, at); err != nil {
		return nil, err
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(next)),
	)

	current.Status = next
	current.UpdatedAt = at
	return current, nil
}

func (s *ReservationService) ListAll(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, *status)
	}
	return s.reservationRepo.List(ctx, status)
}

func (s *ReservationService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByRequester(ctx, requesterID)
}

// CancelOverdue cancels pending reservations whose scheduled time has passed
// without confirmation. It is driven by the scheduler, not by the engine
// itself.
func (s *ReservationService) CancelOverdue(ctx context.Context) ([]*domain.Reservation, error) {
	cancelled, err := s.reservationRepo.CancelOverdue(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("cancel overdue: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("overdue reservations cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, nil
}
