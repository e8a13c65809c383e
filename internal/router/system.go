package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/handler"
)

// registerSystemRoutes registers endpoints outside the business API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
