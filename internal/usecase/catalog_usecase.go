package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// CatalogUsecase validates operator input and orchestrates catalog calls for
// one menu-item kind. The three kinds share one implementation parameterized
// by kind; only the gateway instance differs.
type CatalogUsecase interface {
	// Kind returns the menu-item kind this service manages.
	Kind() entity.Kind

	List(ctx context.Context) ([]entity.MenuItem, error)

	GetByID(ctx context.Context, id int64) (*entity.MenuItem, bool, error)

	// Add parses and validates the raw operator input, then creates the
	// item. priceText must be a non-negative whole number.
	Add(ctx context.Context, name, priceText string) (*entity.MenuItem, error)

	// Update requires a selected item: a nil id fails with
	// "No <kind> selected!" before any parsing. An id the store no longer
	// holds fails with the not-found domain error.
	Update(ctx context.Context, id *int64, name, priceText string) (*entity.MenuItem, error)

	// Remove deletes the item by id. An absent id fails with the not-found
	// domain error.
	Remove(ctx context.Context, id int64) error
}
