package domain

import (
	"fmt"
	"time"
)

// DurationHours returns the stay length in fractional hours. Partial hours
// are not rounded.
func DurationHours(checkIn, checkOut time.Time) (float64, error) {
	if checkOut.Before(checkIn) {
		return 0, fmt.Errorf("%w: check-out time before check-in time", ErrValidation)
	}
	return checkOut.Sub(checkIn).Hours(), nil
}

// ComputeCost bills proportionally to the fractional duration: exact product,
// no rounding to currency increments, no minimum charge. A zero-length stay
// costs zero. Rounding policy, if any, belongs to the caller.
func ComputeCost(checkIn, checkOut time.Time, hourlyRate float64) (float64, error) {
	hours, err := DurationHours(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return hours * hourlyRate, nil
}

// CheckOutQuote is a non-binding cost preview for an occupied slot. The caller
// may show it for confirmation before committing the actual check-out.
type CheckOutQuote struct {
	SlotID        int64           `json:"slot_id"`
	PlateNumber   string          `json:"plate_number"`
	Category      VehicleCategory `json:"category"`
	CheckInTime   time.Time       `json:"check_in_time"`
	QuotedAt      time.Time       `json:"quoted_at"`
	DurationHours float64         `json:"duration_hours"`
	Cost          float64         `json:"cost"`
}
