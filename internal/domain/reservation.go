package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// reservationTransitions is the full status machine: pending -> confirmed or
// cancelled, confirmed -> completed or cancelled. cancelled and completed are
// terminal.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Reservation books future intent to use a slot. It references the slot by id
// only and never sets slot occupancy; actual occupancy is established through
// check-in. Reservations are never deleted, cancellation is a status.
type Reservation struct {
	ID           string            `json:"id"`
	RequesterID  string            `json:"requester_id"`
	PlateNumber  string            `json:"plate_number"`
	Category     VehicleCategory   `json:"category"`
	SlotID       int64             `json:"slot_id"`
	ScheduledFor time.Time         `json:"scheduled_for"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateReservationInput struct {
	RequesterID  string
	PlateNumber  string
	Category     VehicleCategory
	SlotID       int64
	ScheduledFor time.Time
}
