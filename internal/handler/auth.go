package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Handler: NewHandler(s), auth: auth}
}

// Login returns the teacher profile for valid credentials, 401 otherwise.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*model.Professor, error) {
	return h.auth.Login(c.Request().Context(), req.Email, req.Password)
}
