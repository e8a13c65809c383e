package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

type AlunoHandler struct {
	Handler
	alunos *service.AlunoService
}

func NewAlunoHandler(s *server.Server, alunos *service.AlunoService) *AlunoHandler {
	return &AlunoHandler{Handler: NewHandler(s), alunos: alunos}
}

func (h *AlunoHandler) Create(c echo.Context, req *CreateAlunoRequest) (AlunoResponse, error) {
	a, err := h.alunos.Create(c.Request().Context(), req.toModel(0))
	if err != nil {
		return AlunoResponse{}, err
	}
	return newAlunoResponse(*a), nil
}

func (h *AlunoHandler) Get(c echo.Context, req *IDRequest) (AlunoResponse, error) {
	a, err := h.alunos.Get(c.Request().Context(), req.ID)
	if err != nil {
		return AlunoResponse{}, err
	}
	return newAlunoResponse(*a), nil
}

func (h *AlunoHandler) SearchByName(c echo.Context, req *SearchByNameRequest) ([]AlunoResponse, error) {
	alunos, err := h.alunos.SearchByName(c.Request().Context(), req.Name)
	if err != nil {
		return nil, err
	}
	return mapSlice(alunos, newAlunoResponse), nil
}

func (h *AlunoHandler) Update(c echo.Context, req *UpdateAlunoRequest) (AlunoResponse, error) {
	a, err := h.alunos.Update(c.Request().Context(), req.toModel(req.ID))
	if err != nil {
		return AlunoResponse{}, err
	}
	return newAlunoResponse(*a), nil
}

func (h *AlunoHandler) Delete(c echo.Context, req *IDRequest) error {
	return h.alunos.Delete(c.Request().Context(), req.ID)
}

func (h *AlunoHandler) ListResponsaveis(c echo.Context, req *IDRequest) ([]ResponsavelResponse, error) {
	list, err := h.alunos.ListResponsaveis(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return mapSlice(list, newResponsavelResponse), nil
}

func (h *AlunoHandler) LinkResponsavel(c echo.Context, req *AlunoResponsavelRequest) error {
	return h.alunos.LinkResponsavel(c.Request().Context(), req.ID, req.ResponsavelID)
}

func (h *AlunoHandler) UnlinkResponsavel(c echo.Context, req *AlunoResponsavelRequest) error {
	return h.alunos.UnlinkResponsavel(c.Request().Context(), req.ID, req.ResponsavelID)
}
