package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PricingService struct {
	repo   ports.PricingRepo
	logger logger.Logger
}

func NewPricingService(repo ports.PricingRepo, logger logger.Logger) *PricingService {
	return &PricingService{repo: repo, logger: logger}
}

func (s *PricingService) List(ctx context.Context) ([]domain.PricingRate, error) {
	return s.repo.List(ctx)
}

func (s *PricingService) SetRate(ctx context.Context, category domain.VehicleCategory, hourlyRate float64) error {
	if !category.Valid() {
		return fmt.Errorf("%w: unknown vehicle category %q", domain.ErrValidation, category)
	}
	if hourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative", domain.ErrValidation)
	}

	if err := s.repo.UpdateRate(ctx, category, hourlyRate); err != nil {
		return err
	}

	s.logger.Info("hourly rate updated",
		logger.String("category", string(category)),
		logger.Any("hourly_rate", hourlyRate),
	)

	return nil
}
