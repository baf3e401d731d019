// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AppetizerHandler  *handler.AppetizerHandler
	DrinkHandler      *handler.DrinkHandler
	MainCourseHandler *handler.MainCourseHandler
	CashierHandler    *handler.CashierHandler
	AuthHandler       *handler.AuthHandler
	MenuHandler       *handler.MenuHandler
	HealthHandler     *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/login", r.params.AuthHandler.Login)

	for _, h := range []*handler.MenuItemHandler{
		r.params.AppetizerHandler.MenuItemHandler,
		r.params.DrinkHandler.MenuItemHandler,
		r.params.MainCourseHandler.MenuItemHandler,
	} {
		// BasePath carries the /api prefix already.
		group := e.Group(h.BasePath())
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}

	cashiers := api.Group("/cashiers")
	cashiers.GET("", r.params.CashierHandler.List)
	cashiers.GET("/:id", r.params.CashierHandler.Get)
	cashiers.GET("/name/:name", r.params.CashierHandler.GetByName)
	cashiers.PUT("/:id", r.params.CashierHandler.Update)

	api.GET("/menu", r.params.MenuHandler.Full)
	api.GET("/health", r.params.HealthHandler.Health)
	api.GET("/db-check", r.params.HealthHandler.DBCheck)
}
