package ports

import (
	"context"

	"github.com/stpnv0/ParkPoint/internal/domain"
)

type PricingRepo interface {
	List(ctx context.Context) ([]domain.PricingRate, error)
	GetByCategory(ctx context.Context, c domain.VehicleCategory) (*domain.PricingRate, error)
	UpdateRate(ctx context.Context, c domain.VehicleCategory, hourlyRate float64) error
}
