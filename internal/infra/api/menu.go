package api

import (
	"context"
	"encoding/json"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
	"bistro/internal/wire"
)

const (
	menuPath    = "/api/menu"
	healthPath  = "/api/health"
	dbCheckPath = "/api/db-check"
)

// menuGateway reads the store's aggregate menu and diagnostic endpoints.
type menuGateway struct {
	client *Client
}

// NewMenuGateway returns the aggregate/diagnostics façade over the transport client.
func NewMenuGateway(client *Client) repository.MenuRepository {
	return &menuGateway{client: client}
}

func (g *menuGateway) FullMenu(ctx context.Context) (*entity.Menu, error) {
	raw, ok, err := g.client.getOne(ctx, menuPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The aggregate endpoint always answers with a body; an empty one
		// means an empty menu.
		menu := entity.Menu{
			MainCourses: []entity.MenuItem{},
			Appetizers:  []entity.MenuItem{},
			Drinks:      []entity.MenuItem{},
		}

		return &menu, nil
	}

	var body wire.Menu
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.WithStack(err)
	}
	menu := body.Entity()

	return &menu, nil
}

func (g *menuGateway) Health(ctx context.Context) (*entity.ServiceHealth, error) {
	raw, ok, err := g.client.getOne(ctx, healthPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("health endpoint returned no body")
	}

	var body wire.Health
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.ServiceHealth{
		Status:    body.Status,
		Timestamp: body.Timestamp,
		Service:   body.Service,
	}, nil
}

func (g *menuGateway) DBCheck(ctx context.Context) (*entity.StoreHealth, error) {
	raw, ok, err := g.client.getOne(ctx, dbCheckPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("db-check endpoint returned no body")
	}

	var body wire.DBStatus
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.StoreHealth{Status: body.Status, Database: body.Database}, nil
}
