package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationCanceller interface {
	CancelOverdue(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically cancels pending reservations whose scheduled time
// passed without operator confirmation. It lives outside the engine and only
// drives the same status machinery exposed to every other caller.
type Scheduler struct {
	reservations reservationCanceller
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations reservationCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservations.CancelOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to cancel overdue reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range cancelled {
		s.logger.Info("reservation expired",
			logger.String("reservation_id", r.ID),
			logger.String("requester_id", r.RequesterID),
			logger.Int64("slot_id", r.SlotID),
		)
	}
}
