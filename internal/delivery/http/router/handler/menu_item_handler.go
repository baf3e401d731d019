// Package handler contains the HTTP handlers for the catalog store.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/wire"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuItemHandler serves one kind's CRUD endpoints. The wire dialect comes
// from the codec; the handler itself is kind-agnostic.
type MenuItemHandler struct {
	repo   repository.MenuItemRepository
	codec  wire.MenuItemCodec
	logger *slog.Logger
}

// NewMenuItemHandler is the constructor for MenuItemHandler.
func NewMenuItemHandler(repo repository.MenuItemRepository, codec wire.MenuItemCodec, logger *slog.Logger) *MenuItemHandler {
	return &MenuItemHandler{
		repo:   repo,
		codec:  codec,
		logger: logger,
	}
}

// Distinct wrapper types so the DI container can tell the three kind
// handlers apart.
type (
	AppetizerHandler struct{ *MenuItemHandler }

	DrinkHandler struct{ *MenuItemHandler }

	MainCourseHandler struct{ *MenuItemHandler }
)

// NewAppetizerHandler builds the handler for /api/appetizers.
func NewAppetizerHandler(repo repository.AppetizerRepository, logger *slog.Logger) *AppetizerHandler {
	return &AppetizerHandler{NewMenuItemHandler(repo, wire.AppetizerCodec, logger)}
}

// NewDrinkHandler builds the handler for /api/drinks.
func NewDrinkHandler(repo repository.DrinkRepository, logger *slog.Logger) *DrinkHandler {
	return &DrinkHandler{NewMenuItemHandler(repo, wire.DrinkCodec, logger)}
}

// NewMainCourseHandler builds the handler for /api/maincourses.
func NewMainCourseHandler(repo repository.MainCourseRepository, logger *slog.Logger) *MainCourseHandler {
	return &MainCourseHandler{NewMenuItemHandler(repo, wire.MainCourseCodec, logger)}
}

// BasePath returns the route prefix this handler serves.
func (h *MenuItemHandler) BasePath() string {
	return h.codec.BasePath
}

// List handles GET on the collection.
func (h *MenuItemHandler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, h.codec.FromEntity(item))
	}

	return c.JSON(http.StatusOK, rows)
}

// Get handles GET on a single item. An absent id answers 404 with no body.
func (h *MenuItemHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	item, ok, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, h.codec.FromEntity(*item))
}

// Create handles POST on the collection. Any id in the payload is ignored.
func (h *MenuItemHandler) Create(c echo.Context) error {
	item, err := h.bindItem(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	created, err := h.repo.Create(c.Request().Context(), *item)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Menu item stored",
		slog.String("kind", h.codec.Kind.String()),
		slog.String("name", created.Name),
	)

	return c.JSON(http.StatusCreated, h.codec.FromEntity(*created))
}

// Update handles PUT on a single item. The path id wins over any id in the
// payload.
func (h *MenuItemHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	item, err := h.bindItem(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	updated, err := h.repo.Update(c.Request().Context(), entity.MenuItemUpdate{
		ID:        id,
		Kind:      h.codec.Kind,
		Name:      item.Name,
		Price:     item.Price,
		ReceiptID: item.ReceiptID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.codec.FromEntity(*updated))
}

// Delete handles DELETE on a single item.
func (h *MenuItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *MenuItemHandler) bindItem(c echo.Context) (*entity.MenuItem, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return h.codec.DecodeOne(body)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}
