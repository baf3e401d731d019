package usecase

import "bistro/internal/domain/entity"

// BillingUsecase computes bills and persists receipt artifacts. It is
// entirely local: no part of it touches the network.
type BillingUsecase interface {
	// CalculateBill derives VAT and total from the items sum, each rounded
	// to two decimal places at cent granularity.
	CalculateBill(itemsTotalSum float64) entity.Bill

	// GenerateReceiptFile writes the fixed-format plain-text artifact for
	// the given receipt number. The artifact is write-once and never read
	// back; a filesystem failure is reported once, without retry.
	GenerateReceiptFile(receiptNo int, bill entity.Bill) error
}
