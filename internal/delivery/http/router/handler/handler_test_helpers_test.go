package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"bistro/internal/delivery/http/validator"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// memMenuItemRepo is an in-memory MenuItemRepository for handler tests.
type memMenuItemRepo struct {
	kind   entity.Kind
	items  []entity.MenuItem
	nextID int64
}

func (r *memMenuItemRepo) List(context.Context) ([]entity.MenuItem, error) {
	return append([]entity.MenuItem{}, r.items...), nil
}

func (r *memMenuItemRepo) FindByID(_ context.Context, id int64) (*entity.MenuItem, bool, error) {
	for i := range r.items {
		if *r.items[i].ID == id {
			item := r.items[i]

			return &item, true, nil
		}
	}

	return nil, false, nil
}

func (r *memMenuItemRepo) Create(_ context.Context, item entity.MenuItem) (*entity.MenuItem, error) {
	r.nextID++
	id := r.nextID
	item.ID = &id
	item.Kind = r.kind
	r.items = append(r.items, item)

	return &item, nil
}

func (r *memMenuItemRepo) Update(_ context.Context, upd entity.MenuItemUpdate) (*entity.MenuItem, error) {
	for i := range r.items {
		if *r.items[i].ID == upd.ID {
			r.items[i].Name = upd.Name
			r.items[i].Price = upd.Price
			item := r.items[i]

			return &item, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *memMenuItemRepo) Delete(_ context.Context, id int64) error {
	for i := range r.items {
		if *r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrNotFound
}

// memCashierRepo is an in-memory CashierRepository for handler tests.
type memCashierRepo struct {
	cashiers []entity.Cashier
}

func (r *memCashierRepo) List(context.Context) ([]entity.Cashier, error) {
	return append([]entity.Cashier{}, r.cashiers...), nil
}

func (r *memCashierRepo) FindByID(_ context.Context, id int64) (*entity.Cashier, bool, error) {
	for i := range r.cashiers {
		if r.cashiers[i].ID == id {
			c := r.cashiers[i]

			return &c, true, nil
		}
	}

	return nil, false, nil
}

func (r *memCashierRepo) FindByName(_ context.Context, name string) (*entity.Cashier, bool, error) {
	for i := range r.cashiers {
		if r.cashiers[i].Name == name {
			c := r.cashiers[i]

			return &c, true, nil
		}
	}

	return nil, false, nil
}

func (r *memCashierRepo) Update(_ context.Context, upd entity.CashierUpdate) (*entity.Cashier, error) {
	for i := range r.cashiers {
		if r.cashiers[i].ID == upd.ID {
			r.cashiers[i].Name = upd.Name
			r.cashiers[i].Salary = upd.Salary
			c := r.cashiers[i]

			return &c, nil
		}
	}

	return nil, repository.ErrNotFound
}

// memUserRepo serves fixed credentials.
type memUserRepo struct {
	creds []entity.Credential
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.Credential, bool, error) {
	for i := range r.creds {
		if r.creds[i].Username == username {
			cred := r.creds[i]

			return &cred, true, nil
		}
	}

	return nil, false, nil
}
