package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// ReportUsecase aggregates store reads into human-readable summaries.
type ReportUsecase interface {
	// CashierInfo returns all registered cashiers in store order.
	CashierInfo(ctx context.Context) ([]entity.Cashier, error)

	// MenuStatus fetches the three menu-item lists and composes a one-line
	// count summary. Any failing fetch fails the whole check; no partial
	// message is produced.
	MenuStatus(ctx context.Context) (string, error)
}
