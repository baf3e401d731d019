package impl

import (
	"context"
	"io"
	"log/slog"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"

	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fakeMenuItemRepo is an in-memory stand-in for one menu-item gateway. Each
// field overrides one call; unset calls operate on the items slice.
type fakeMenuItemRepo struct {
	items  []entity.MenuItem
	nextID int64

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	lastCreate *entity.MenuItem
	lastUpdate *entity.MenuItemUpdate
}

func (f *fakeMenuItemRepo) List(_ context.Context) ([]entity.MenuItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]entity.MenuItem{}, f.items...), nil
}

func (f *fakeMenuItemRepo) FindByID(_ context.Context, id int64) (*entity.MenuItem, bool, error) {
	for i := range f.items {
		if f.items[i].ID != nil && *f.items[i].ID == id {
			item := f.items[i]

			return &item, true, nil
		}
	}

	return nil, false, nil
}

func (f *fakeMenuItemRepo) Create(_ context.Context, item entity.MenuItem) (*entity.MenuItem, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	id := f.nextID
	item.ID = &id
	f.items = append(f.items, item)
	f.lastCreate = &item

	return &item, nil
}

func (f *fakeMenuItemRepo) Update(_ context.Context, upd entity.MenuItemUpdate) (*entity.MenuItem, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	f.lastUpdate = &upd

	for i := range f.items {
		if f.items[i].ID != nil && *f.items[i].ID == upd.ID {
			f.items[i].Name = upd.Name
			f.items[i].Price = upd.Price
			item := f.items[i]

			return &item, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeMenuItemRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	for i := range f.items {
		if f.items[i].ID != nil && *f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrNotFound
}

// fakeCashierRepo serves a fixed cashier list.
type fakeCashierRepo struct {
	cashiers []entity.Cashier
	listErr  error
}

func (f *fakeCashierRepo) List(_ context.Context) ([]entity.Cashier, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]entity.Cashier{}, f.cashiers...), nil
}

func (f *fakeCashierRepo) FindByID(_ context.Context, id int64) (*entity.Cashier, bool, error) {
	for i := range f.cashiers {
		if f.cashiers[i].ID == id {
			c := f.cashiers[i]

			return &c, true, nil
		}
	}

	return nil, false, nil
}

func (f *fakeCashierRepo) FindByName(_ context.Context, name string) (*entity.Cashier, bool, error) {
	for i := range f.cashiers {
		if f.cashiers[i].Name == name {
			c := f.cashiers[i]

			return &c, true, nil
		}
	}

	return nil, false, nil
}

func (f *fakeCashierRepo) Update(_ context.Context, upd entity.CashierUpdate) (*entity.Cashier, error) {
	for i := range f.cashiers {
		if f.cashiers[i].ID == upd.ID {
			f.cashiers[i].Name = upd.Name
			f.cashiers[i].Salary = upd.Salary
			c := f.cashiers[i]

			return &c, nil
		}
	}

	return nil, repository.ErrNotFound
}

// fakeSessionRepo accepts exactly one credential pair.
type fakeSessionRepo struct {
	username string
	password string
	user     entity.User

	loginErr   error
	loginCalls int
}

func (f *fakeSessionRepo) Login(_ context.Context, username, password string) (*entity.User, error) {
	f.loginCalls++

	if f.loginErr != nil {
		return nil, f.loginErr
	}

	if username != f.username || password != f.password {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user := f.user

	return &user, nil
}
