package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface for one menu-item
// kind. The three kinds share this implementation; only the kind label and
// the gateway behind the repository differ.
type catalogService struct {
	kind   entity.Kind
	items  repository.MenuItemRepository
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	kind entity.Kind,
	items repository.MenuItemRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		kind:   kind,
		items:  items,
		logger: logger,
	}
}

// NewAppetizerService builds the catalog service for appetizers.
func NewAppetizerService(items repository.AppetizerRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return NewCatalogService(entity.KindAppetizer, items, logger)
}

// NewDrinkService builds the catalog service for drinks.
func NewDrinkService(items repository.DrinkRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return NewCatalogService(entity.KindDrink, items, logger)
}

// NewMainCourseService builds the catalog service for main courses.
func NewMainCourseService(items repository.MainCourseRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return NewCatalogService(entity.KindMainCourse, items, logger)
}

// Kind returns the menu-item kind this service manages.
func (srv *catalogService) Kind() entity.Kind {
	return srv.kind
}

// List returns all items of the kind.
func (srv *catalogService) List(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := srv.items.List(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss", srv.kind)
	}

	return items, nil
}

// GetByID returns the item and true, or ok=false when the id is absent.
func (srv *catalogService) GetByID(ctx context.Context, id int64) (*entity.MenuItem, bool, error) {
	item, ok, err := srv.items.FindByID(ctx, id)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to find %s %d", srv.kind, id)
	}

	return item, ok, nil
}

// Add parses and validates the raw operator input, then creates the item.
func (srv *catalogService) Add(ctx context.Context, name, priceText string) (*entity.MenuItem, error) {
	name, price, err := srv.parseInput(name, priceText)
	if err != nil {
		return nil, err
	}

	created, err := srv.items.Create(ctx, entity.MenuItem{
		Kind:  srv.kind,
		Name:  name,
		Price: price,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", srv.kind)
	}

	srv.logger.Info("Menu item created",
		slog.String("kind", srv.kind.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// Update replaces the selected item. The selection check runs before any
// parsing so an operator with nothing selected gets the selection message
// even when the fields are also invalid.
func (srv *catalogService) Update(ctx context.Context, id *int64, name, priceText string) (*entity.MenuItem, error) {
	if id == nil {
		return nil, domainerrors.NewValidationError("No " + srv.kind.String() + " selected!")
	}

	name, price, err := srv.parseInput(name, priceText)
	if err != nil {
		return nil, err
	}

	updated, err := srv.items.Update(ctx, entity.MenuItemUpdate{
		ID:    *id,
		Kind:  srv.kind,
		Name:  name,
		Price: price,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("update %s %d", srv.kind, *id))
		}

		return nil, errors.Wrapf(err, "failed to update %s %d", srv.kind, *id)
	}

	srv.logger.Info("Menu item updated",
		slog.String("kind", srv.kind.String()),
		slog.Int64("id", *id),
	)

	return updated, nil
}

// Remove deletes the item by id.
func (srv *catalogService) Remove(ctx context.Context, id int64) error {
	if err := srv.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("delete %s %d", srv.kind, id))
		}

		return errors.Wrapf(err, "failed to delete %s %d", srv.kind, id)
	}

	srv.logger.Info("Menu item deleted",
		slog.String("kind", srv.kind.String()),
		slog.Int64("id", id),
	)

	return nil
}

// parseInput normalizes the operator-entered fields. Price is checked in
// order: present, numeric, non-negative, so the operator sees the first
// failing rule only.
func (srv *catalogService) parseInput(name, priceText string) (string, int, error) {
	name = strings.TrimSpace(name)
	priceText = strings.TrimSpace(priceText)

	if priceText == "" {
		return "", 0, domainerrors.NewValidationError("Price cannot be empty.")
	}

	price, err := strconv.Atoi(priceText)
	if err != nil {
		return "", 0, domainerrors.NewValidationError("Price must be a valid whole number.")
	}

	if price < 0 {
		return "", 0, domainerrors.NewValidationError("Price cannot be negative.")
	}

	if name == "" {
		return "", 0, domainerrors.NewValidationError("Item name cannot be empty.")
	}

	return name, price, nil
}
