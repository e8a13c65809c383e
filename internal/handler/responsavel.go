package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

type ResponsavelHandler struct {
	Handler
	responsaveis *service.ResponsavelService
}

func NewResponsavelHandler(s *server.Server, responsaveis *service.ResponsavelService) *ResponsavelHandler {
	return &ResponsavelHandler{Handler: NewHandler(s), responsaveis: responsaveis}
}

func (h *ResponsavelHandler) Create(c echo.Context, req *CreateResponsavelRequest) (ResponsavelResponse, error) {
	r, err := h.responsaveis.Create(c.Request().Context(), req.toModel(0))
	if err != nil {
		return ResponsavelResponse{}, err
	}
	return newResponsavelResponse(*r), nil
}

func (h *ResponsavelHandler) Get(c echo.Context, req *IDRequest) (ResponsavelResponse, error) {
	r, err := h.responsaveis.Get(c.Request().Context(), req.ID)
	if err != nil {
		return ResponsavelResponse{}, err
	}
	return newResponsavelResponse(*r), nil
}

func (h *ResponsavelHandler) Update(c echo.Context, req *UpdateResponsavelRequest) (ResponsavelResponse, error) {
	r, err := h.responsaveis.Update(c.Request().Context(), req.toModel(req.ID))
	if err != nil {
		return ResponsavelResponse{}, err
	}
	return newResponsavelResponse(*r), nil
}

func (h *ResponsavelHandler) Delete(c echo.Context, req *IDRequest) error {
	return h.responsaveis.Delete(c.Request().Context(), req.ID)
}

func (h *ResponsavelHandler) ListAlunos(c echo.Context, req *IDRequest) ([]AlunoResponse, error) {
	alunos, err := h.responsaveis.ListAlunos(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return mapSlice(alunos, newAlunoResponse), nil
}
