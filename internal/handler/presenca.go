package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

type PresencaHandler struct {
	Handler
	presencas *service.PresencaService
}

func NewPresencaHandler(s *server.Server, presencas *service.PresencaService) *PresencaHandler {
	return &PresencaHandler{Handler: NewHandler(s), presencas: presencas}
}

func (h *PresencaHandler) Create(c echo.Context, req *CreatePresencaRequest) (*model.Presenca, error) {
	return h.presencas.Record(c.Request().Context(), req.toModel(0))
}

func (h *PresencaHandler) Get(c echo.Context, req *IDRequest) (*model.Presenca, error) {
	return h.presencas.Get(c.Request().Context(), req.ID)
}

func (h *PresencaHandler) ListByAluno(c echo.Context, req *ListPresencasRequest) ([]model.Presenca, error) {
	return h.presencas.ListByAluno(c.Request().Context(), req.AlunoID)
}

func (h *PresencaHandler) Update(c echo.Context, req *UpdatePresencaRequest) (*model.Presenca, error) {
	return h.presencas.Update(c.Request().Context(), req.toModel(req.ID))
}

func (h *PresencaHandler) Delete(c echo.Context, req *IDRequest) error {
	return h.presencas.Delete(c.Request().Context(), req.ID)
}
