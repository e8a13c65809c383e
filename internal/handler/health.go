package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/middleware"
	"github.com/bhzconnection/escola/internal/server"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports whether the service and its dependencies answer.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status       string                 `json:"status"`
	Timestamp    time.Time              `json:"timestamp"`
	Environment  string                 `json:"environment"`
	DatabaseHost string                 `json:"database_host,omitempty"`
	Checks       map[string]checkResult `json:"checks"`
}

// CheckHealth pings PostgreSQL and Redis. A database failure yields 503;
// Redis is reported but does not fail the check because only notifications
// depend on it.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	if h.server.DB != nil {
		response.DatabaseHost = h.server.DB.Host
		result := h.check(c.Request().Context(), "database", h.server.DB.Pool.Ping)
		response.Checks["database"] = result
		if result.Status != "healthy" {
			response.Status = "unhealthy"
		}
	}

	if h.server.Redis != nil {
		response.Checks["redis"] = h.check(c.Request().Context(), "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		h.recordHealthError("overall", nil, time.Since(start))
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) check(parent context.Context, name string, ping func(context.Context) error) checkResult {
	ctx, cancel := context.WithTimeout(parent, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		h.server.Logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")
		h.recordHealthError(name, err, elapsed)
		return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
}

// recordHealthError sends a HealthCheckError custom event when New Relic is on.
func (h *HealthHandler) recordHealthError(checkType string, err error, elapsed time.Duration) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	event := map[string]interface{}{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       checkType + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		event["error_message"] = err.Error()
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", event)
}
