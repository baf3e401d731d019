package handler

import (
	"net/http"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/wire"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CashierHandler serves the cashier read and update endpoints. Cashier
// records are provisioned out of band, so there is no create or delete.
type CashierHandler struct {
	repo repository.CashierRepository
}

// NewCashierHandler is the constructor for CashierHandler.
func NewCashierHandler(repo repository.CashierRepository) *CashierHandler {
	return &CashierHandler{repo: repo}
}

// List handles GET /api/cashiers.
func (h *CashierHandler) List(c echo.Context) error {
	cashiers, err := h.repo.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	rows := make([]wire.Cashier, 0, len(cashiers))
	for _, cashier := range cashiers {
		rows = append(rows, wire.CashierFromEntity(cashier))
	}

	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /api/cashiers/:id.
func (h *CashierHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	cashier, ok, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, wire.CashierFromEntity(*cashier))
}

// GetByName handles GET /api/cashiers/name/:name.
func (h *CashierHandler) GetByName(c echo.Context) error {
	cashier, ok, err := h.repo.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, wire.CashierFromEntity(*cashier))
}

// Update handles PUT /api/cashiers/:id. The path id wins over any id in the
// payload.
func (h *CashierHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	var row wire.Cashier
	if err := c.Bind(&row); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	updated, err := h.repo.Update(c.Request().Context(), entity.CashierUpdate{
		ID:     id,
		Name:   row.Name,
		Salary: row.Salary,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, wire.CashierFromEntity(*updated))
}
