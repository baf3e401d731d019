package impl

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"
)

// vatRate is the statutory value-added tax applied to every bill.
const vatRate = 0.15

// billingService implements the BillingUsecase interface.
type billingService struct {
	receiptsDir string
	logger      *slog.Logger
}

// NewBillingService is the constructor for billingService. receiptsDir is
// created lazily on the first write.
func NewBillingService(receiptsDir string, logger *slog.Logger) usecase.BillingUsecase {
	return &billingService{
		receiptsDir: receiptsDir,
		logger:      logger,
	}
}

// CalculateBill derives VAT and total from the items sum.
func (srv *billingService) CalculateBill(itemsTotalSum float64) entity.Bill {
	subtotal := round2(itemsTotalSum)
	vat := round2(itemsTotalSum * vatRate)

	return entity.Bill{
		Subtotal: subtotal,
		VAT:      vat,
		Total:    round2(itemsTotalSum + vat),
	}
}

// GenerateReceiptFile writes the plain-text receipt artifact for the given
// receipt number.
func (srv *billingService) GenerateReceiptFile(receiptNo int, bill entity.Bill) error {
	if err := os.MkdirAll(srv.receiptsDir, 0o755); err != nil {
		srv.logger.Error("Failed to create receipts directory",
			slog.String("dir", srv.receiptsDir),
			slog.Any("error", err),
		)

		return domainerrors.ErrReceiptWrite.WrapMessage("create receipts directory")
	}

	path := filepath.Join(srv.receiptsDir, fmt.Sprintf("billNo.%d.txt", receiptNo))

	if err := os.WriteFile(path, []byte(receiptText(receiptNo, bill)), 0o644); err != nil {
		srv.logger.Error("Failed to write receipt",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.ErrReceiptWrite.WrapMessage("write receipt file")
	}

	srv.logger.Info("Receipt written", slog.String("path", path))

	return nil
}

// receiptText renders the fixed receipt layout. Amounts print with the
// shortest decimal form, so whole values carry no trailing zeros.
func receiptText(receiptNo int, bill entity.Bill) string {
	var b strings.Builder

	fmt.Fprintf(&b, " Bill number is: %d\n", receiptNo)
	b.WriteString("==============\n")
	b.WriteString("--------------\n")
	fmt.Fprintf(&b, "Subtotal is: %s SR\n", formatAmount(bill.Subtotal))
	fmt.Fprintf(&b, "vat: %s SR\n", formatAmount(bill.VAT))
	fmt.Fprintf(&b, "Total is: %s SR\n", formatAmount(bill.Total))
	b.WriteString("\n")
	b.WriteString("THANK YOU FOR ORDERING\n")

	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round2 rounds to two decimal places, half away from zero, at cent
// granularity.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
