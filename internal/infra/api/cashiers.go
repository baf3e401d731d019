package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/errors"
	"bistro/internal/wire"
)

const cashiersPath = "/api/cashiers"

// cashierGateway is the remote implementation of
// repository.CashierRepository. The store exposes no create or delete for
// cashiers, so neither does the contract.
type cashierGateway struct {
	client *Client
}

// NewCashierGateway returns the cashier façade over the transport client.
func NewCashierGateway(client *Client) repository.CashierRepository {
	return &cashierGateway{client: client}
}

func (g *cashierGateway) List(ctx context.Context) ([]entity.Cashier, error) {
	raw, err := g.client.getList(ctx, cashiersPath)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []entity.Cashier{}, nil
	}

	var rows []wire.Cashier
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.WithStack(err)
	}
	cashiers := make([]entity.Cashier, 0, len(rows))
	for _, row := range rows {
		cashiers = append(cashiers, row.Entity())
	}

	return cashiers, nil
}

func (g *cashierGateway) FindByID(ctx context.Context, id int64) (*entity.Cashier, bool, error) {
	return g.findOne(ctx, fmt.Sprintf("%s/%d", cashiersPath, id))
}

func (g *cashierGateway) FindByName(ctx context.Context, name string) (*entity.Cashier, bool, error) {
	return g.findOne(ctx, cashiersPath+"/name/"+url.PathEscape(name))
}

func (g *cashierGateway) Update(ctx context.Context, upd entity.CashierUpdate) (*entity.Cashier, error) {
	payload := wire.Cashier{ID: upd.ID, Name: upd.Name, Salary: upd.Salary}

	raw, err := g.client.send(ctx, http.MethodPut, fmt.Sprintf("%s/%d", cashiersPath, upd.ID), payload)
	if err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	var row wire.Cashier
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, errors.WithStack(err)
	}
	cashier := row.Entity()

	return &cashier, nil
}

func (g *cashierGateway) findOne(ctx context.Context, path string) (*entity.Cashier, bool, error) {
	raw, ok, err := g.client.getOne(ctx, path)
	if err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, false, nil
		}

		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	var row wire.Cashier
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, false, errors.WithStack(err)
	}
	cashier := row.Entity()

	return &cashier, true, nil
}
