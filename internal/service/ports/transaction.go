package ports

import (
	"context"

	"github.com/stpnv0/ParkPoint/internal/domain"
)

type TransactionRepo interface {
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
}
