package repository

import (
	"time"

	"github.com/bhzconnection/escola/internal/model"
)

// Row types mirror the tables column by column. from* functions leave the
// generated id unset; toModel copies it back. No validation happens here.

type alunoRow struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	BornDate   time.Time `db:"born_date"`
	ClassShift string    `db:"class_shift"`
}

func fromAluno(a model.Aluno) alunoRow {
	return alunoRow{
		Name:       a.Name,
		BornDate:   a.BornDate,
		ClassShift: a.ClassShift,
	}
}

func (r alunoRow) toModel() model.Aluno {
	return model.Aluno{
		ID:         r.ID,
		Name:       r.Name,
		BornDate:   r.BornDate,
		ClassShift: r.ClassShift,
	}
}

type responsavelRow struct {
	ID                    int64     `db:"id"`
	Name                  string    `db:"name"`
	Relationship          string    `db:"relationship"`
	Identity              string    `db:"identity"`
	CPF                   string    `db:"cpf"`
	BornDate              time.Time `db:"born_date"`
	CivilStatus           string    `db:"civil_status"`
	StreetName            string    `db:"street_name"`
	StreetNumber          string    `db:"street_number"`
	Neighborhood          string    `db:"neighborhood"`
	HousingAdditionalInfo string    `db:"housing_additional_info"`
	CEP                   string    `db:"cep"`
	Phone                 string    `db:"phone"`
	Landline              string    `db:"landline"`
	Email                 string    `db:"email"`
	Observation           string    `db:"observation"`
}

func fromResponsavel(r model.ResponsavelPorAluno) responsavelRow {
	return responsavelRow{
		Name:                  r.Name,
		Relationship:          r.Relationship,
		Identity:              r.Identity,
		CPF:                   r.CPF,
		BornDate:              r.BornDate,
		CivilStatus:           r.CivilStatus,
		StreetName:            r.StreetName,
		StreetNumber:          r.StreetNumber,
		Neighborhood:          r.Neighborhood,
		HousingAdditionalInfo: r.HousingAdditionalInfo,
		CEP:                   r.CEP,
		Phone:                 r.Phone,
		Landline:              r.Landline,
		Email:                 r.Email,
		Observation:           r.Observation,
	}
}

func (r responsavelRow) toModel() model.ResponsavelPorAluno {
	return model.ResponsavelPorAluno{
		ID:                    r.ID,
		Name:                  r.Name,
		Relationship:          r.Relationship,
		Identity:              r.Identity,
		CPF:                   r.CPF,
		BornDate:              r.BornDate,
		CivilStatus:           r.CivilStatus,
		StreetName:            r.StreetName,
		StreetNumber:          r.StreetNumber,
		Neighborhood:          r.Neighborhood,
		HousingAdditionalInfo: r.HousingAdditionalInfo,
		CEP:                   r.CEP,
		Phone:                 r.Phone,
		Landline:              r.Landline,
		Email:                 r.Email,
		Observation:           r.Observation,
	}
}

// args returns the insert/update arguments in column order, without id.
func (r responsavelRow) args() []any {
	return []any{
		r.Name, r.Relationship, r.Identity, r.CPF, r.BornDate, r.CivilStatus,
		r.StreetName, r.StreetNumber, r.Neighborhood, r.HousingAdditionalInfo,
		r.CEP, r.Phone, r.Landline, r.Email, r.Observation,
	}
}

type professorRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

func fromProfessor(p model.Professor) professorRow {
	return professorRow{
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
	}
}

func (r professorRow) toModel() model.Professor {
	return model.Professor{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	}
}

type presencaRow struct {
	ID                 int64  `db:"id"`
	AlunoID            int64  `db:"aluno_id"`
	Status             string `db:"status"`
	Document           string `db:"document"`
	ReasonMissingClass string `db:"reason_missing_class"`
}

func fromPresenca(p model.Presenca) presencaRow {
	return presencaRow{
		AlunoID:            p.AlunoID,
		Status:             p.Status,
		Document:           p.Document,
		ReasonMissingClass: p.ReasonMissingClass,
	}
}

func (r presencaRow) toModel() model.Presenca {
	return model.Presenca{
		ID:                 r.ID,
		AlunoID:            r.AlunoID,
		Status:             r.Status,
		Document:           r.Document,
		ReasonMissingClass: r.ReasonMissingClass,
	}
}

type periodoLetivoRow struct {
	ID         int64     `db:"id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	ClassShift string    `db:"class_shift"`
}

func fromPeriodoLetivo(p model.PeriodoLetivo) periodoLetivoRow {
	return periodoLetivoRow{
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		ClassShift: p.ClassShift,
	}
}

func (r periodoLetivoRow) toModel() model.PeriodoLetivo {
	return model.PeriodoLetivo{
		ID:         r.ID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		ClassShift: r.ClassShift,
	}
}

type diaSemAulaRow struct {
	ID              int64     `db:"id"`
	PeriodoLetivoID int64     `db:"periodo_letivo_id"`
	Date            time.Time `db:"date"`
	Reason          string    `db:"reason"`
}

func fromDiaSemAula(d model.DiaSemAula) diaSemAulaRow {
	return diaSemAulaRow{
		PeriodoLetivoID: d.PeriodoLetivoID,
		Date:            d.Date,
		Reason:          d.Reason,
	}
}

func (r diaSemAulaRow) toModel() model.DiaSemAula {
	return model.DiaSemAula{
		ID:              r.ID,
		PeriodoLetivoID: r.PeriodoLetivoID,
		Date:            r.Date,
		Reason:          r.Reason,
	}
}

// toModels converts collected rows, returning an empty (non-nil) slice for no rows.
func toModels[M any, R interface{ toModel() M }](rows []R) []M {
	out := make([]M, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out
}
