package repository

import (
	"context"

	"bistro/internal/domain/entity"
)

// CashierRepository is the access contract for cashier records. Cashiers are
// created out of band, so the contract has no create or delete.
type CashierRepository interface {
	List(ctx context.Context) ([]entity.Cashier, error)

	FindByID(ctx context.Context, id int64) (*entity.Cashier, bool, error)

	// FindByName looks a cashier up by their unique display name.
	FindByName(ctx context.Context, name string) (*entity.Cashier, bool, error)

	// Update replaces name and salary of the cashier named by upd.ID.
	// A missing id yields ErrNotFound.
	Update(ctx context.Context, upd entity.CashierUpdate) (*entity.Cashier, error)
}
