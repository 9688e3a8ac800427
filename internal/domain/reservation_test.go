package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", ReservationStatusPending, ReservationStatusConfirmed, true},
		{"pending to cancelled", ReservationStatusPending, ReservationStatusCancelled, true},
		{"pending to completed", ReservationStatusPending, ReservationStatusCompleted, false},
		{"confirmed to completed", ReservationStatusConfirmed, ReservationStatusCompleted, true},
		{"confirmed to cancelled", ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{"confirmed to pending", ReservationStatusConfirmed, ReservationStatusPending, false},
		{"cancelled is terminal", ReservationStatusCancelled, ReservationStatusPending, false},
		{"cancelled to confirmed", ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{"completed is terminal", ReservationStatusCompleted, ReservationStatusCancelled, false},
		{"no self transition", ReservationStatusPending, ReservationStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_Valid(t *testing.T) {
	for _, s := range []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusCancelled,
		ReservationStatusCompleted,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, ReservationStatus("expired").Valid())
	assert.False(t, ReservationStatus("").Valid())
}

func TestVehicleCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), string(c))
	}

	assert.False(t, VehicleCategory("bus").Valid())
	assert.False(t, VehicleCategory("").Valid())
}
