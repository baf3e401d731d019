package handler

import (
	"net/http"

	"bistro/internal/domain/repository"
	"bistro/internal/wire"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler serves the aggregate menu endpoint.
type MenuHandler struct {
	appetizers  repository.AppetizerRepository
	drinks      repository.DrinkRepository
	mainCourses repository.MainCourseRepository
}

// NewMenuHandler is the constructor for MenuHandler.
func NewMenuHandler(
	appetizers repository.AppetizerRepository,
	drinks repository.DrinkRepository,
	mainCourses repository.MainCourseRepository,
) *MenuHandler {
	return &MenuHandler{
		appetizers:  appetizers,
		drinks:      drinks,
		mainCourses: mainCourses,
	}
}

// Full handles GET /api/menu: every kind plus the combined count in one
// response.
func (h *MenuHandler) Full(c echo.Context) error {
	ctx := c.Request().Context()

	appetizers, err := h.appetizers.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	drinks, err := h.drinks.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	mainCourses, err := h.mainCourses.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	menu := wire.Menu{
		MainCourses: make([]wire.MainCourse, 0, len(mainCourses)),
		Appetizers:  make([]wire.Appetizer, 0, len(appetizers)),
		Drinks:      make([]wire.Drink, 0, len(drinks)),
		TotalItems:  len(mainCourses) + len(appetizers) + len(drinks),
	}
	for _, item := range mainCourses {
		menu.MainCourses = append(menu.MainCourses, wire.MainCourseFromEntity(item))
	}
	for _, item := range appetizers {
		menu.Appetizers = append(menu.Appetizers, wire.AppetizerFromEntity(item))
	}
	for _, item := range drinks {
		menu.Drinks = append(menu.Drinks, wire.DrinkFromEntity(item))
	}

	return c.JSON(http.StatusOK, menu)
}
