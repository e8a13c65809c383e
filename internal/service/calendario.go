package service

import (
	"context"

	"github.com/bhzconnection/escola/internal/errs"
	"github.com/bhzconnection/escola/internal/model"
)

// Error codes for calendar rule violations.
const (
	CodePeriodoInvalidRange  = "PERIODO_LETIVO_INVALID_RANGE"
	CodePeriodoExcludesDias  = "PERIODO_LETIVO_EXCLUDES_DIAS_SEM_AULA"
	CodeDiaSemAulaOutOfRange = "DIA_SEM_AULA_OUT_OF_RANGE"
)

// CalendarioService manages academic terms and their days without class.
type CalendarioService struct {
	periodos PeriodoLetivoStore
	dias     DiaSemAulaStore
}

func NewCalendarioService(periodos PeriodoLetivoStore, dias DiaSemAulaStore) *CalendarioService {
	return &CalendarioService{periodos: periodos, dias: dias}
}

func (s *CalendarioService) CreatePeriodo(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	if err := validateRange(p); err != nil {
		return nil, err
	}
	return s.periodos.Save(ctx, p)
}

func (s *CalendarioService) GetPeriodo(ctx context.Context, id int64) (*model.PeriodoLetivo, error) {
	return s.periodos.GetByID(ctx, id)
}

// UpdatePeriodo rejects a new range that would leave existing days without
// class outside the term.
func (s *CalendarioService) UpdatePeriodo(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	if err := validateRange(p); err != nil {
		return nil, err
	}

	dias, err := s.dias.ListByPeriodoLetivo(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for _, d := range dias {
		if !p.Contains(d.Date) {
			code := CodePeriodoExcludesDias
			return nil, errs.NewBadRequestError(
				"The new range leaves the day without class on "+d.Date.Format(model.DateLayout)+" outside the term",
				true, &code, nil, nil)
		}
	}

	return s.periodos.Update(ctx, p)
}

// DeletePeriodo removes the term together with its days without class.
func (s *CalendarioService) DeletePeriodo(ctx context.Context, id int64) error {
	return s.periodos.DeleteWithDiasSemAula(ctx, &model.PeriodoLetivo{ID: id})
}

// AddDiaSemAula stores a day without class. The term must exist and contain the date.
func (s *CalendarioService) AddDiaSemAula(ctx context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error) {
	periodo, err := s.periodos.GetByID(ctx, d.PeriodoLetivoID)
	if err != nil {
		return nil, err
	}

	if !periodo.Contains(d.Date) {
		code := CodeDiaSemAulaOutOfRange
		return nil, errs.NewBadRequestError(
			"The date must fall between "+periodo.StartDate.Format(model.DateLayout)+" and "+periodo.EndDate.Format(model.DateLayout),
			true, &code, []errs.FieldError{{Field: "date", Error: "is outside the term"}}, nil)
	}

	return s.dias.Save(ctx, d)
}

func (s *CalendarioService) GetDiaSemAula(ctx context.Context, id int64) (*model.DiaSemAula, error) {
	return s.dias.GetByID(ctx, id)
}

func (s *CalendarioService) ListDiasSemAula(ctx context.Context, periodoLetivoID int64) ([]model.DiaSemAula, error) {
	if _, err := s.periodos.GetByID(ctx, periodoLetivoID); err != nil {
		return nil, err
	}
	return s.dias.ListByPeriodoLetivo(ctx, periodoLetivoID)
}

func (s *CalendarioService) DeleteDiaSemAula(ctx context.Context, id int64) error {
	return s.dias.Delete(ctx, &model.DiaSemAula{ID: id})
}

func validateRange(p *model.PeriodoLetivo) error {
	if p.EndDate.Before(p.StartDate) {
		code := CodePeriodoInvalidRange
		return errs.NewBadRequestError("The end date must not be before the start date", true, &code,
			[]errs.FieldError{{Field: "endDate", Error: "must not be before startDate"}}, nil)
	}
	return nil
}
