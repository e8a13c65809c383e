package handler

import (
	"fmt"
	"time"

	"github.com/bhzconnection/escola/internal/lib/password"
	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/validation"
)

// parseDate converts a YYYY-MM-DD value already checked by the datetime tag.
func parseDate(s string) time.Time {
	t, _ := time.Parse(model.DateLayout, s)
	return t
}

func formatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// IDRequest carries a single :id path parameter.
type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *IDRequest) Validate() error { return validation.Struct(r) }

type SearchByNameRequest struct {
	Name string `query:"name" validate:"required,max=100"`
}

func (r *SearchByNameRequest) Validate() error { return validation.Struct(r) }

// ---- auth / professor --------------------------------------------------------

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

func (r *LoginRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkPasswordBytes(r.Password)
}

type CreateProfessorRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *CreateProfessorRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return checkPasswordBytes(r.Password)
}

// checkPasswordBytes enforces the bcrypt limit; the max tag counts characters.
func checkPasswordBytes(plain string) error {
	if len(plain) > password.MaxBytes {
		return validation.CustomValidationErrors{{
			Field:   "password",
			Message: fmt.Sprintf("must be at most %d bytes", password.MaxBytes),
		}}
	}
	return nil
}

// ---- aluno -------------------------------------------------------------------

type AlunoBody struct {
	Name       string `json:"name" validate:"required,max=100"`
	BornDate   string `json:"bornDate" validate:"required,datetime=2006-01-02"`
	ClassShift string `json:"classShift" validate:"required,oneof=Manhã Tarde Noite"`
}

func (b AlunoBody) toModel(id int64) *model.Aluno {
	return &model.Aluno{ID: id, Name: b.Name, BornDate: parseDate(b.BornDate), ClassShift: b.ClassShift}
}

type CreateAlunoRequest struct {
	AlunoBody
}

func (r *CreateAlunoRequest) Validate() error { return validation.Struct(r) }

type UpdateAlunoRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	AlunoBody
}

func (r *UpdateAlunoRequest) Validate() error { return validation.Struct(r) }

type AlunoResponsavelRequest struct {
	ID            int64 `param:"id" json:"-" validate:"required,gt=0"`
	ResponsavelID int64 `param:"responsavelId" json:"-" validate:"required,gt=0"`
}

func (r *AlunoResponsavelRequest) Validate() error { return validation.Struct(r) }

type AlunoResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BornDate   string `json:"bornDate"`
	ClassShift string `json:"classShift"`
}

func newAlunoResponse(a model.Aluno) AlunoResponse {
	return AlunoResponse{ID: a.ID, Name: a.Name, BornDate: formatDate(a.BornDate), ClassShift: a.ClassShift}
}

// ---- responsavel -------------------------------------------------------------

type ResponsavelBody struct {
	Name                  string `json:"name" validate:"required,max=100"`
	Relationship          string `json:"relationship" validate:"required,max=100"`
	Identity              string `json:"identity" validate:"required,max=20"`
	CPF                   string `json:"cpf" validate:"required,len=11,numeric"`
	BornDate              string `json:"bornDate" validate:"required,datetime=2006-01-02"`
	CivilStatus           string `json:"civilStatus" validate:"required,max=20"`
	StreetName            string `json:"streetName" validate:"required,max=100"`
	StreetNumber          string `json:"streetNumber" validate:"required,max=10"`
	Neighborhood          string `json:"neighborhood" validate:"required,max=100"`
	HousingAdditionalInfo string `json:"housingAdditionalInfo" validate:"max=100"`
	CEP                   string `json:"cep" validate:"required,len=8,numeric"`
	Phone                 string `json:"phone" validate:"required,max=20"`
	Landline              string `json:"landline" validate:"max=20"`
	Email                 string `json:"email" validate:"omitempty,email,max=100"`
	Observation           string `json:"observation" validate:"max=200"`
}

func (b ResponsavelBody) toModel(id int64) *model.ResponsavelPorAluno {
	return &model.ResponsavelPorAluno{
		ID:                    id,
		Name:                  b.Name,
		Relationship:          b.Relationship,
		Identity:              b.Identity,
		CPF:                   b.CPF,
		BornDate:              parseDate(b.BornDate),
		CivilStatus:           b.CivilStatus,
		StreetName:            b.StreetName,
		StreetNumber:          b.StreetNumber,
		Neighborhood:          b.Neighborhood,
		HousingAdditionalInfo: b.HousingAdditionalInfo,
		CEP:                   b.CEP,
		Phone:                 b.Phone,
		Landline:              b.Landline,
		Email:                 b.Email,
		Observation:           b.Observation,
	}
}

type CreateResponsavelRequest struct {
	ResponsavelBody
}

func (r *CreateResponsavelRequest) Validate() error { return validation.Struct(r) }

type UpdateResponsavelRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	ResponsavelBody
}

func (r *UpdateResponsavelRequest) Validate() error { return validation.Struct(r) }

type ResponsavelResponse struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Relationship          string `json:"relationship"`
	Identity              string `json:"identity"`
	CPF                   string `json:"cpf"`
	BornDate              string `json:"bornDate"`
	CivilStatus           string `json:"civilStatus"`
	StreetName            string `json:"streetName"`
	StreetNumber          string `json:"streetNumber"`
	Neighborhood          string `json:"neighborhood"`
	HousingAdditionalInfo string `json:"housingAdditionalInfo"`
	CEP                   string `json:"cep"`
	Phone                 string `json:"phone"`
	Landline              string `json:"landline"`
	Email                 string `json:"email"`
	Observation           string `json:"observation"`
}

func newResponsavelResponse(r model.ResponsavelPorAluno) ResponsavelResponse {
	return ResponsavelResponse{
		ID:                    r.ID,
		Name:                  r.Name,
		Relationship:          r.Relationship,
		Identity:              r.Identity,
		CPF:                   r.CPF,
		BornDate:              formatDate(r.BornDate),
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

// ---- presenca ----------------------------------------------------------------

type PresencaBody struct {
	AlunoID            int64  `json:"alunoId" validate:"required,gt=0"`
	Status             string `json:"status" validate:"required,oneof=presente falta falta_justificada"`
	Document           string `json:"document" validate:"max=255"`
	ReasonMissingClass string `json:"reasonMissingClass"`
}

func (b PresencaBody) toModel(id int64) *model.Presenca {
	return &model.Presenca{
		ID:                 id,
		AlunoID:            b.AlunoID,
		Status:             b.Status,
		Document:           b.Document,
		ReasonMissingClass: b.ReasonMissingClass,
	}
}

type CreatePresencaRequest struct {
	PresencaBody
}

func (r *CreatePresencaRequest) Validate() error { return validation.Struct(r) }

type UpdatePresencaRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	PresencaBody
}

func (r *UpdatePresencaRequest) Validate() error { return validation.Struct(r) }

type ListPresencasRequest struct {
	AlunoID int64 `query:"aluno_id" validate:"required,gt=0"`
}

func (r *ListPresencasRequest) Validate() error { return validation.Struct(r) }

// ---- calendario --------------------------------------------------------------

type PeriodoLetivoBody struct {
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	ClassShift string `json:"classShift" validate:"required,oneof=Manhã Tarde Noite"`
}

func (b PeriodoLetivoBody) toModel(id int64) *model.PeriodoLetivo {
	return &model.PeriodoLetivo{
		ID:         id,
		StartDate:  parseDate(b.StartDate),
		EndDate:    parseDate(b.EndDate),
		ClassShift: b.ClassShift,
	}
}

type CreatePeriodoLetivoRequest struct {
	PeriodoLetivoBody
}

func (r *CreatePeriodoLetivoRequest) Validate() error { return validation.Struct(r) }

type UpdatePeriodoLetivoRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	PeriodoLetivoBody
}

func (r *UpdatePeriodoLetivoRequest) Validate() error { return validation.Struct(r) }

type PeriodoLetivoResponse struct {
	ID         int64  `json:"id"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	ClassShift string `json:"classShift"`
}

func newPeriodoLetivoResponse(p model.PeriodoLetivo) PeriodoLetivoResponse {
	return PeriodoLetivoResponse{
		ID:         p.ID,
		StartDate:  formatDate(p.StartDate),
		EndDate:    formatDate(p.EndDate),
		ClassShift: p.ClassShift,
	}
}

type CreateDiaSemAulaRequest struct {
	PeriodoLetivoID int64  `param:"id" json:"-" validate:"required,gt=0"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason          string `json:"reason" validate:"required,max=100"`
}

func (r *CreateDiaSemAulaRequest) Validate() error { return validation.Struct(r) }

type DiaSemAulaResponse struct {
	ID              int64  `json:"id"`
	PeriodoLetivoID int64  `json:"periodoLetivoId"`
	Date            string `json:"date"`
	Reason          string `json:"reason"`
}

func newDiaSemAulaResponse(d model.DiaSemAula) DiaSemAulaResponse {
	return DiaSemAulaResponse{
		ID:              d.ID,
		PeriodoLetivoID: d.PeriodoLetivoID,
		Date:            formatDate(d.Date),
		Reason:          d.Reason,
	}
}
