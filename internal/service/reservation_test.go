package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validReservationInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		RequesterID:  "u1",
		PlateNumber:  "KA-01-1234",
		Category:     domain.CategoryCar,
		SlotID:       3,
		ScheduledFor: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestReservationService_Create(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), frozenClock(now))

	slotRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Slot{ID: 3}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	r, err := svc.Create(context.Background(), validReservationInput())

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.ReservationStatusPending, r.Status)
	assert.Equal(t, "u1", r.RequesterID)
	assert.Equal(t, int64(3), r.SlotID)
	assert.Equal(t, now, r.CreatedAt)
}

func TestReservationService_Create_OccupiedSlotAllowed(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	// Current occupancy does not block a future booking.
	slotRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Slot{
		ID:       3,
		Occupied: true,
		Vehicle:  &domain.Vehicle{PlateNumber: "XX-99", Category: domain.CategoryTruck},
	}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	r, err := svc.Create(context.Background(), validReservationInput())

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, r.Status)
}

func TestReservationService_Create_SlotNotFound(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	slotRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(nil, domain.ErrSlotNotFound)

	_, err := svc.Create(context.Background(), validReservationInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestReservationService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateReservationInput)
	}{
		{"missing requester", func(in *domain.CreateReservationInput) { in.RequesterID = " " }},
		{"missing plate", func(in *domain.CreateReservationInput) { in.PlateNumber = "" }},
		{"zero scheduled_for", func(in *domain.CreateReservationInput) { in.ScheduledFor = time.Time{} }},
		{"bad category", func(in *domain.CreateReservationInput) { in.Category = "bus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationRepo := mocks.NewMockReservationRepo(t)
			slotRepo := mocks.NewMockSlotRepo(t)

			svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

			input := validReservationInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_SetStatus_Confirm(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	now := time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), frozenClock(now))

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Reservation{
		ID:     "r1",
		Status: domain.ReservationStatusPending,
	}, nil)

	// The timestamp written to the row and the one returned to the caller
	// must be the same instant.
	var written time.Time
	reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusPending, domain.ReservationStatusConfirmed, now).
		Run(func(_ context.Context, _ string, _, _ domain.ReservationStatus, at time.Time) {
			written = at
		}).
		Return(nil)

	r, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, r.Status)
	assert.Equal(t, now, r.UpdatedAt)
	assert.Equal(t, written, r.UpdatedAt)
}

func TestReservationService_SetStatus_IllegalTransition(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Reservation{
		ID:     "r1",
		Status: domain.ReservationStatusCancelled,
	}, nil)

	_, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_SetStatus_UnknownStatus(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	_, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatus("expired"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_SetStatus_LostRace(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	// Someone else moved the reservation between our read and our write; the
	// compare-and-set surfaces it as an invalid transition.
	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Reservation{
		ID:     "r1",
		Status: domain.ReservationStatusPending,
	}, nil)
	reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusPending, domain.ReservationStatusConfirmed, mock.Anything).
		Return(domain.ErrInvalidTransition)

	_, err := svc.SetStatus(context.Background(), "r1", domain.ReservationStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_ListAll_BadStatusFilter(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	bad := domain.ReservationStatus("nope")
	_, err := svc.ListAll(context.Background(), &bad)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ListAll_StatusFilter(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	pending := domain.ReservationStatusPending
	want := []*domain.Reservation{{ID: "r1", Status: pending}}
	reservationRepo.EXPECT().List(mock.Anything, &pending).Return(want, nil)

	got, err := svc.ListAll(context.Background(), &pending)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReservationService_CancelOverdue(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), frozenClock(now))

	cancelled := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusCancelled},
	}
	reservationRepo.EXPECT().CancelOverdue(mock.Anything, now).Return(cancelled, nil)

	got, err := svc.CancelOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cancelled, got)
}

func TestReservationService_CancelOverdue_RepoError(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)

	svc := NewReservationService(reservationRepo, slotRepo, newTestLogger(t), time.Now)

	reservationRepo.EXPECT().CancelOverdue(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CancelOverdue(context.Background())

	require.Error(t, err)
}
