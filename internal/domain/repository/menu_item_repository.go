// Package repository defines the persistence-agnostic contracts the use
// cases depend on. The same contracts are implemented twice: over HTTP by the
// client gateways and over the database by the store.
package repository

import (
	"context"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"
)

// ErrNotFound signals that a write targeted an id the store does not hold.
// Reads model absence as an explicit (value, ok, err) triple instead; the
// sentinel is reserved for operations where a missing id is a caller error.
var ErrNotFound = errors.New("resource not found")

// MenuItemRepository is the access contract for one menu-item kind. Every
// call is a fresh round trip; implementations hold no per-call state and are
// safe for concurrent reuse.
type MenuItemRepository interface {
	// List returns all items of the kind in store order. An empty store
	// yields an empty slice, never nil and never an error.
	List(ctx context.Context) ([]entity.MenuItem, error)

	// FindByID returns the item and true, or ok=false when the id is not
	// present. Absence is not an error.
	FindByID(ctx context.Context, id int64) (*entity.MenuItem, bool, error)

	// Create persists a new, id-less item and returns the stored value with
	// its assigned id.
	Create(ctx context.Context, item entity.MenuItem) (*entity.MenuItem, error)

	// Update replaces the item named by upd.ID and returns the stored value.
	// A missing id yields ErrNotFound.
	Update(ctx context.Context, upd entity.MenuItemUpdate) (*entity.MenuItem, error)

	// Delete removes the item. Deleting an absent id yields ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

// One named contract per kind so wiring layers can tell the three apart
// while sharing a single generic implementation.
type (
	AppetizerRepository interface{ MenuItemRepository }

	DrinkRepository interface{ MenuItemRepository }

	MainCourseRepository interface{ MenuItemRepository }
)
