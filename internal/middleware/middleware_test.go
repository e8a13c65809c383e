package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhzconnection/escola/internal/config"
	"github.com/bhzconnection/escola/internal/errs"
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Auth:    config.AuthConfig{LoginRate: 0.001, LoginBurst: 2},
		},
		Logger: &logger,
	}
}

func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	m := NewMiddlewares(s)
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestIDReusesHeader(t *testing.T) {
	e := newEcho(newTestServer())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestContextEnhancerStoresRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer()
	logger := zerolog.New(&buf)
	s.Logger = &logger

	e := newEcho(s)
	e.GET("/", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		GetLogger(c).Info().Msg("from handler")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "abc-123", entry["request_id"])
		assert.Equal(t, http.MethodGet, entry["method"])
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", sqlerr.NotFound("aluno", "get"), http.StatusNotFound, "ALUNO_NOT_FOUND"},
		{"duplicate email", sqlerr.Wrap("professor", "save", &pgconn.PgError{
			Code: "23505", TableName: "professor", ConstraintName: "professor_email_key",
		}), http.StatusConflict, "PROFESSOR_ALREADY_EXISTS"},
		{"http error", errs.NewUnauthorizedError("Invalid email or password", true), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(newTestServer())
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	e := newEcho(newTestServer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestLoginRateLimit(t *testing.T) {
	s := newTestServer()
	e := newEcho(s)
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewRateLimitMiddleware(s).Login())

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, responseStatus(http.StatusOK, nil))
	assert.Equal(t, http.StatusNotFound, responseStatus(http.StatusOK, sqlerr.NotFound("presenca", "get")))
	assert.Equal(t, http.StatusTeapot, responseStatus(http.StatusOK, echo.NewHTTPError(http.StatusTeapot)))
}
