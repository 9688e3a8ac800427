package service

import (
	"context"

	"github.com/stpnv0/ParkPoint/internal/domain"
	"github.com/stpnv0/ParkPoint/internal/service/ports"
)

// LedgerService exposes the append-only transaction history and derives
// revenue figures from it. Aggregates are recomputed on every call; the ledger
// itself is the only stored truth.
type LedgerService struct {
	repo ports.TransactionRepo
}

func NewLedgerService(repo ports.TransactionRepo) *LedgerService {
	return &LedgerService{repo: repo}
}

func (s *LedgerService) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	return s.repo.List(ctx, filter)
}

func (s *LedgerService) Report(ctx context.Context, filter domain.TransactionFilter) (*domain.RevenueReport, error) {
	txns, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &domain.RevenueReport{
		Count:             len(txns),
		RevenueByCategory: make(map[domain.VehicleCategory]float64),
	}

	var totalHours float64
	for _, t := range txns {
		report.TotalRevenue += t.Cost
		report.RevenueByCategory[t.Category] += t.Cost
		totalHours += t.DurationHours
	}
	if len(txns) > 0 {
		report.AvgDurationHours = totalHours / float64(len(txns))
	}

	return report, nil
}
