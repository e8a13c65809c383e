// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/handler"
	"github.com/bhzconnection/escola/internal/middleware"
	"github.com/bhzconnection/escola/internal/server"
)

// NewRouter builds the echo instance with global middleware, system routes
// and the /api/v1 group.
//
// Order matters: the request id must exist before the context logger is
// built, and the New Relic transaction before tracing attributes are added.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.CORS(),
		m.Global.Secure(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)

	registerSystemRoutes(r, h)

	v1 := r.Group("/api/v1")
	registerV1Routes(v1, h, m)

	return r
}
