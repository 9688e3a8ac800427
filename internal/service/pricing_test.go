package service

import (
	"context"
	"testing"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPricingService_SetRate(t *testing.T) {
	repo := mocks.NewMockPricingRepo(t)
	svc := NewPricingService(repo, newTestLogger(t))

	repo.EXPECT().UpdateRate(mock.Anything, domain.CategoryCar, 60.0).Return(nil)

	err := svc.SetRate(context.Background(), domain.CategoryCar, 60)

	require.NoError(t, err)
}

func TestPricingService_SetRate_NegativeRate(t *testing.T) {
	repo := mocks.NewMockPricingRepo(t)
	svc := NewPricingService(repo, newTestLogger(t))

	err := svc.SetRate(context.Background(), domain.CategoryCar, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPricingService_SetRate_InvalidCategory(t *testing.T) {
	repo := mocks.NewMockPricingRepo(t)
	svc := NewPricingService(repo, newTestLogger(t))

	err := svc.SetRate(context.Background(), domain.VehicleCategory("bus"), 40)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPricingService_SetRate_UnknownCategoryRow(t *testing.T) {
	repo := mocks.NewMockPricingRepo(t)
	svc := NewPricingService(repo, newTestLogger(t))

	repo.EXPECT().UpdateRate(mock.Anything, domain.CategorySUV, 80.0).Return(domain.ErrRateNotFound)

	err := svc.SetRate(context.Background(), domain.CategorySUV, 80)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestPricingService_List(t *testing.T) {
	repo := mocks.NewMockPricingRepo(t)
	svc := NewPricingService(repo, newTestLogger(t))

	rates := []domain.PricingRate{
		{Category: domain.CategoryMotorcycle, HourlyRate: 20},
		{Category: domain.CategoryCar, HourlyRate: 50},
	}
	repo.EXPECT().List(mock.Anything).Return(rates, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rates, got)
}
