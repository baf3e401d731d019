package api

import (
	"context"
	"fmt"
	"net/http"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/wire"
)

// menuItemGateway is the generic remote implementation of
// repository.MenuItemRepository, parameterized by a kind codec. It is a thin,
// stateless mapping from domain value to path template and verb; it performs
// no validation and no caching, so the store stays the single source of
// truth.
type menuItemGateway struct {
	client *Client
	codec  wire.MenuItemCodec
}

// NewAppetizerGateway returns the appetizer façade over the transport client.
func NewAppetizerGateway(client *Client) repository.AppetizerRepository {
	return &menuItemGateway{client: client, codec: wire.AppetizerCodec}
}

// NewDrinkGateway returns the drink façade over the transport client.
func NewDrinkGateway(client *Client) repository.DrinkRepository {
	return &menuItemGateway{client: client, codec: wire.DrinkCodec}
}

// NewMainCourseGateway returns the main-course façade over the transport client.
func NewMainCourseGateway(client *Client) repository.MainCourseRepository {
	return &menuItemGateway{client: client, codec: wire.MainCourseCodec}
}

func (g *menuItemGateway) List(ctx context.Context) ([]entity.MenuItem, error) {
	raw, err := g.client.getList(ctx, g.codec.BasePath)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []entity.MenuItem{}, nil
	}

	return g.codec.DecodeList(raw)
}

func (g *menuItemGateway) FindByID(ctx context.Context, id int64) (*entity.MenuItem, bool, error) {
	raw, ok, err := g.client.getOne(ctx, g.itemPath(id))
	if err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, false, nil
		}

		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	item, err := g.codec.DecodeOne(raw)
	if err != nil {
		return nil, false, err
	}

	return item, true, nil
}

func (g *menuItemGateway) Create(ctx context.Context, item entity.MenuItem) (*entity.MenuItem, error) {
	item.ID = nil // the store assigns identity
	raw, err := g.client.send(ctx, http.MethodPost, g.codec.BasePath, g.codec.FromEntity(item))
	if err != nil {
		return nil, err
	}

	return g.codec.DecodeOne(raw)
}

func (g *menuItemGateway) Update(ctx context.Context, upd entity.MenuItemUpdate) (*entity.MenuItem, error) {
	id := upd.ID
	payload := g.codec.FromEntity(entity.MenuItem{
		ID:        &id,
		Kind:      g.codec.Kind,
		Name:      upd.Name,
		Price:     upd.Price,
		ReceiptID: upd.ReceiptID,
	})

	raw, err := g.client.send(ctx, http.MethodPut, g.itemPath(id), payload)
	if err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	return g.codec.DecodeOne(raw)
}

func (g *menuItemGateway) Delete(ctx context.Context, id int64) error {
	if err := g.client.delete(ctx, g.itemPath(id)); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return repository.ErrNotFound
		}

		return err
	}

	return nil
}

func (g *menuItemGateway) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", g.codec.BasePath, id)
}
