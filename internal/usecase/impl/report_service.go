package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	cashiers    repository.CashierRepository
	appetizers  repository.AppetizerRepository
	drinks      repository.DrinkRepository
	mainCourses repository.MainCourseRepository
	logger      *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	cashiers repository.CashierRepository,
	appetizers repository.AppetizerRepository,
	drinks repository.DrinkRepository,
	mainCourses repository.MainCourseRepository,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		cashiers:    cashiers,
		appetizers:  appetizers,
		drinks:      drinks,
		mainCourses: mainCourses,
		logger:      logger,
	}
}

// CashierInfo returns all registered cashiers.
func (srv *reportService) CashierInfo(ctx context.Context) ([]entity.Cashier, error) {
	cashiers, err := srv.cashiers.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cashiers")
	}

	return cashiers, nil
}

// MenuStatus fetches the three menu-item lists and composes the count
// summary. The calls run sequentially; the first failure aborts the check.
func (srv *reportService) MenuStatus(ctx context.Context) (string, error) {
	appetizers, err := srv.appetizers.List(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list appetizers")
	}

	drinks, err := srv.drinks.List(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list drinks")
	}

	mainCourses, err := srv.mainCourses.List(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list main courses")
	}

	msg := fmt.Sprintf("Menu System Online: %d appetizers, %d drinks, %d main courses available.",
		len(appetizers), len(drinks), len(mainCourses))

	srv.logger.Debug("Menu status composed", slog.String("status", msg))

	return msg, nil
}
