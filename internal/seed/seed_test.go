package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhzconnection/escola/internal/lib/password"
	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

type memory struct {
	nextID      int64
	alunos      []model.Aluno
	professores []model.Professor
	periodos    []model.PeriodoLetivo
	dias        []model.DiaSemAula
	failOn      string
}

func (m *memory) id() int64 {
	m.nextID++
	return m.nextID
}

type alunoFake struct{ *memory }

func (f alunoFake) Save(_ context.Context, a *model.Aluno) (*model.Aluno, error) {
	if f.failOn == "aluno" {
		return nil, errors.New("connection refused")
	}
	a.ID = f.id()
	f.alunos = append(f.alunos, *a)
	return a, nil
}

func (f alunoFake) GetByName(_ context.Context, name string) ([]model.Aluno, error) {
	out := []model.Aluno{}
	for _, a := range f.alunos {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out, nil
}

type professorFake struct{ *memory }

func (f professorFake) Save(_ context.Context, p *model.Professor) (*model.Professor, error) {
	p.ID = f.id()
	f.professores = append(f.professores, *p)
	return p, nil
}

func (f professorFake) GetByEmail(_ context.Context, email string) (*model.Professor, error) {
	for _, p := range f.professores {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, sqlerr.NotFound("professor", "get_by_email")
}

type periodoFake struct{ *memory }

func (f periodoFake) Save(_ context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	p.ID = f.id()
	f.periodos = append(f.periodos, *p)
	return p, nil
}

func (f periodoFake) GetByRange(_ context.Context, start, end time.Time) ([]model.PeriodoLetivo, error) {
	out := []model.PeriodoLetivo{}
	for _, p := range f.periodos {
		if p.StartDate.Equal(start) && p.EndDate.Equal(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

type diaFake struct{ *memory }

func (f diaFake) Save(_ context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error) {
	d.ID = f.id()
	f.dias = append(f.dias, *d)
	return d, nil
}

func (f diaFake) ListByPeriodoLetivo(_ context.Context, periodoLetivoID int64) ([]model.DiaSemAula, error) {
	out := []model.DiaSemAula{}
	for _, d := range f.dias {
		if d.PeriodoLetivoID == periodoLetivoID {
			out = append(out, d)
		}
	}
	return out, nil
}

func newSeeder(m *memory) *Seeder {
	logger := zerolog.Nop()
	return NewWithStores(alunoFake{m}, professorFake{m}, periodoFake{m}, diaFake{m}, bcrypt.MinCost, &logger)
}

func TestRunSeedsEverything(t *testing.T) {
	m := &memory{}

	res, err := newSeeder(m).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Alunos: 16, Professores: 1, Periodos: 1, DiasSemAula: 3}, res)
	assert.Len(t, m.alunos, 16)

	require.Len(t, m.professores, 1)
	william := m.professores[0]
	assert.Equal(t, "william@bhzconnection.org.br", william.Email)
	ok, err := password.Compare(william.PasswordHash, "password123")
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, m.periodos, 1)
	assert.Equal(t, model.ShiftManha, m.periodos[0].ClassShift)
	for _, d := range m.dias {
		assert.Equal(t, m.periodos[0].ID, d.PeriodoLetivoID)
		assert.Equal(t, "Feriado", d.Reason)
		assert.True(t, m.periodos[0].Contains(d.Date))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	m := &memory{}
	s := newSeeder(m)

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Len(t, m.alunos, 16)
	assert.Len(t, m.dias, 3)
}

func TestRunKeepsHomonymWithOtherBirthDate(t *testing.T) {
	m := &memory{alunos: []model.Aluno{{ID: 100, Name: "Pedro Souza", BornDate: time.Date(1999, 5, 1, 0, 0, 0, 0, time.UTC)}}}

	res, err := newSeeder(m).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, res.Alunos)
}

func TestRunStopsOnStoreFailure(t *testing.T) {
	m := &memory{failOn: "aluno"}

	res, err := newSeeder(m).Run(context.Background())
	require.Error(t, err)
	assert.Zero(t, res.Alunos)
	assert.Empty(t, m.professores)
}
