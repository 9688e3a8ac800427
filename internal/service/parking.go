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

// ParkingService orchestrates the stay lifecycle: check-in claims a slot,
// Quote previews the bill, CheckOut frees the slot and records the stay as one
// atomic unit. The clock is injected so billing is deterministic in tests.
type ParkingService struct {
	slotRepo    ports.SlotRepo
	pricingRepo ports.PricingRepo
	logger      logger.Logger
	now         func() time.Time
}

func NewParkingService(
	slotRepo ports.SlotRepo,
	pricingRepo ports.PricingRepo,
	logger logger.Logger,
	now func() time.Time,
) *ParkingService {
	return &ParkingService{
		slotRepo:    slotRepo,
		pricingRepo: pricingRepo,
		logger:      logger,
		now:         now,
	}
}

func (s *ParkingService) ListSlots(ctx context.Context) ([]domain.Slot, error) {
	return s.slotRepo.List(ctx)
}

func (s *ParkingService) CheckIn(ctx context.Context, slotID int64, plate string, category domain.VehicleCategory) (*domain.Slot, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate number is required", domain.ErrValidation)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle category %q", domain.ErrValidation, category)
	}

	vehicle := domain.Vehicle{
		PlateNumber: plate,
		Category:    category,
		CheckInTime: s.now().UTC(),
	}

	slot, err := s.slotRepo.CheckIn(ctx, slotID, vehicle)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vehicle checked in",
		logger.Int64("slot_id", slotID),
		logger.String("plate_number", plate),
		logger.String("category", string(category)),
	)

	return slot, nil
}

// Quote computes what the occupant would owe if it checked out now, without
// mutating anything. Callers wanting a confirmation step show the quote and
// then commit with CheckOut; the amounts may differ by the time elapsed in
// between.
func (s *ParkingService) Quote(ctx context.Context, slotID int64) (*domain.CheckOutQuote, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if !slot.Occupied {
		return nil, domain.ErrSlotNotOccupied
	}

	rate, err := s.pricingRepo.GetByCategory(ctx, slot.Vehicle.Category)
	if err != nil {
		return nil, err
	}

	quotedAt := s.now().UTC()
	hours, err := domain.DurationHours(slot.Vehicle.CheckInTime, quotedAt)
	if err != nil {
		return nil, err
	}
	cost, err := domain.ComputeCost(slot.Vehicle.CheckInTime, quotedAt, rate.HourlyRate)
	if err != nil {
		return nil, err
	}

	return &domain.CheckOutQuote{
		SlotID:        slotID,
		PlateNumber:   slot.Vehicle.PlateNumber,
		Category:      slot.Vehicle.Category,
		CheckInTime:   slot.Vehicle.CheckInTime,
		QuotedAt:      quotedAt,
		DurationHours: hours,
		Cost:          cost,
	}, nil
}

func (s *ParkingService) CheckOut(ctx context.Context, slotID int64) (*domain.Transaction, error) {
	txn, err := s.slotRepo.CheckOut(ctx, slotID, uuid.New().String(), s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info("vehicle checked out",
		logger.Int64("slot_id", slotID),
		logger.String("transaction_id", txn.ID),
		logger.String("plate_number", txn.PlateNumber),
		logger.Any("cost", txn.Cost),
	)

	return txn, nil
}
