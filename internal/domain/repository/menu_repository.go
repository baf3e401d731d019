package repository

import (
	"context"

	"bistro/internal/domain/entity"
)

// MenuRepository reads the store's aggregate and diagnostic endpoints.
type MenuRepository interface {
	// FullMenu returns every item of every kind plus the combined count in
	// one round trip.
	FullMenu(ctx context.Context) (*entity.Menu, error)

	// Health reports the store's liveness.
	Health(ctx context.Context) (*entity.ServiceHealth, error)

	// DBCheck reports the store's database connectivity. An unavailable
	// database surfaces as an error carrying the 503 the store returned.
	DBCheck(ctx context.Context) (*entity.StoreHealth, error)
}
