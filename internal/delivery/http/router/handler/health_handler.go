package handler

import (
	"context"
	"net/http"
	"time"

	"bistro/internal/domain/lifecycle"
	"bistro/internal/wire"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const serviceName = "Restaurant Server"

// HealthHandler serves the liveness and database diagnostics endpoints.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /api/health. It never touches the database.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, wire.Health{
		Status:    "UP",
		Timestamp: time.Now().UnixMilli(),
		Service:   serviceName,
	})
}

// DBCheck handles GET /api/db-check. A broken connection answers 503 with
// status DOWN.
func (h *HealthHandler) DBCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, wire.DBStatus{
			Status:   "DOWN",
			Database: "Connection failed",
			Error:    err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, wire.DBStatus{
			Status:   "DOWN",
			Database: "Connection failed",
			Error:    err.Error(),
		})
	}

	return c.JSON(http.StatusOK, wire.DBStatus{
		Status:   "UP",
		Database: "Connected",
	})
}
