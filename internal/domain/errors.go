package domain

import "errors"

var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRateNotFound        = errors.New("pricing rate not found")
)

var (
	ErrSlotOccupied         = errors.New("slot is already occupied")
	ErrSlotNotOccupied      = errors.New("slot is not occupied")
	ErrInvalidTransition    = errors.New("invalid reservation status transition")
	ErrDuplicateTransaction = errors.New("transaction id already recorded")
)

var (
	ErrValidation = errors.New("validation error")
)
