package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

type ProfessorHandler struct {
	Handler
	professores *service.ProfessorService
}

func NewProfessorHandler(s *server.Server, professores *service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{Handler: NewHandler(s), professores: professores}
}

func (h *ProfessorHandler) Create(c echo.Context, req *CreateProfessorRequest) (*model.Professor, error) {
	return h.professores.Create(c.Request().Context(), req.Name, req.Email, req.Password)
}

func (h *ProfessorHandler) Get(c echo.Context, req *IDRequest) (*model.Professor, error) {
	return h.professores.Get(c.Request().Context(), req.ID)
}

func (h *ProfessorHandler) SearchByName(c echo.Context, req *SearchByNameRequest) ([]model.Professor, error) {
	return h.professores.SearchByName(c.Request().Context(), req.Name)
}

func (h *ProfessorHandler) Delete(c echo.Context, req *IDRequest) error {
	return h.professores.Delete(c.Request().Context(), req.ID)
}
