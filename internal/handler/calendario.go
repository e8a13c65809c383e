package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

// CalendarioHandler serves academic terms and their days without class.
type CalendarioHandler struct {
	Handler
	calendario *service.CalendarioService
}

func NewCalendarioHandler(s *server.Server, calendario *service.CalendarioService) *CalendarioHandler {
	return &CalendarioHandler{Handler: NewHandler(s), calendario: calendario}
}

func (h *CalendarioHandler) CreatePeriodo(c echo.Context, req *CreatePeriodoLetivoRequest) (PeriodoLetivoResponse, error) {
	p, err := h.calendario.CreatePeriodo(c.Request().Context(), req.toModel(0))
	if err != nil {
		return PeriodoLetivoResponse{}, err
	}
	return newPeriodoLetivoResponse(*p), nil
}

func (h *CalendarioHandler) GetPeriodo(c echo.Context, req *IDRequest) (PeriodoLetivoResponse, error) {
	p, err := h.calendario.GetPeriodo(c.Request().Context(), req.ID)
	if err != nil {
		return PeriodoLetivoResponse{}, err
	}
	return newPeriodoLetivoResponse(*p), nil
}

func (h *CalendarioHandler) UpdatePeriodo(c echo.Context, req *UpdatePeriodoLetivoRequest) (PeriodoLetivoResponse, error) {
	p, err := h.calendario.UpdatePeriodo(c.Request().Context(), req.toModel(req.ID))
	if err != nil {
		return PeriodoLetivoResponse{}, err
	}
	return newPeriodoLetivoResponse(*p), nil
}

// DeletePeriodo also removes the term's days without class.
func (h *CalendarioHandler) DeletePeriodo(c echo.Context, req *IDRequest) error {
	return h.calendario.DeletePeriodo(c.Request().Context(), req.ID)
}

func (h *CalendarioHandler) AddDiaSemAula(c echo.Context, req *CreateDiaSemAulaRequest) (DiaSemAulaResponse, error) {
	d, err := h.calendario.AddDiaSemAula(c.Request().Context(), &model.DiaSemAula{
		PeriodoLetivoID: req.PeriodoLetivoID,
		Date:            parseDate(req.Date),
		Reason:          req.Reason,
	})
	if err != nil {
		return DiaSemAulaResponse{}, err
	}
	return newDiaSemAulaResponse(*d), nil
}

func (h *CalendarioHandler) ListDiasSemAula(c echo.Context, req *IDRequest) ([]DiaSemAulaResponse, error) {
	dias, err := h.calendario.ListDiasSemAula(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return mapSlice(dias, newDiaSemAulaResponse), nil
}

func (h *CalendarioHandler) GetDiaSemAula(c echo.Context, req *IDRequest) (DiaSemAulaResponse, error) {
	d, err := h.calendario.GetDiaSemAula(c.Request().Context(), req.ID)
	if err != nil {
		return DiaSemAulaResponse{}, err
	}
	return newDiaSemAulaResponse(*d), nil
}

func (h *CalendarioHandler) DeleteDiaSemAula(c echo.Context, req *IDRequest) error {
	return h.calendario.DeleteDiaSemAula(c.Request().Context(), req.ID)
}
