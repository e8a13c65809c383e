// Package seed loads a small demo data set for local development.
//
// Seeding is idempotent: a record that already exists is left untouched.
// Students match on name and birth date, teachers on email, terms on their
// bounds and days without class on date within their term.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/repository"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

type AlunoStore interface {
	Save(ctx context.Context, a *model.Aluno) (*model.Aluno, error)
	GetByName(ctx context.Context, name string) ([]model.Aluno, error)
}

type ProfessorStore interface {
	Save(ctx context.Context, p *model.Professor) (*model.Professor, error)
	GetByEmail(ctx context.Context, email string) (*model.Professor, error)
}

type PeriodoLetivoStore interface {
	Save(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error)
	GetByRange(ctx context.Context, start, end time.Time) ([]model.PeriodoLetivo, error)
}

type DiaSemAulaStore interface {
	Save(ctx context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error)
	ListByPeriodoLetivo(ctx context.Context, periodoLetivoID int64) ([]model.DiaSemAula, error)
}

// Result counts the records created by one run.
type Result struct {
	Alunos      int
	Professores int
	Periodos    int
	DiasSemAula int
}

type Seeder struct {
	alunos      AlunoStore
	professores ProfessorStore
	periodos    PeriodoLetivoStore
	dias        DiaSemAulaStore
	bcryptCost  int
	logger      *zerolog.Logger
}

func New(repos *repository.Repositories, bcryptCost int, logger *zerolog.Logger) *Seeder {
	return NewWithStores(repos.Alunos, repos.Professores, repos.PeriodosLetivo, repos.DiasSemAula, bcryptCost, logger)
}

func NewWithStores(
	alunos AlunoStore,
	professores ProfessorStore,
	periodos PeriodoLetivoStore,
	dias DiaSemAulaStore,
	bcryptCost int,
	logger *zerolog.Logger,
) *Seeder {
	return &Seeder{
		alunos:      alunos,
		professores: professores,
		periodos:    periodos,
		dias:        dias,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// Run inserts every missing fixture and stops at the first store failure.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	n, err := s.seedAlunos(ctx)
	res.Alunos = n
	if err != nil {
		return res, err
	}

	n, err = s.seedProfessores(ctx)
	res.Professores = n
	if err != nil {
		return res, err
	}

	for _, f := range periodos {
		created, dias, err := s.seedPeriodo(ctx, f)
		if created {
			res.Periodos++
		}
		res.DiasSemAula += dias
		if err != nil {
			return res, err
		}
	}

	s.logger.Info().
		Int("alunos", res.Alunos).
		Int("professores", res.Professores).
		Int("periodos", res.Periodos).
		Int("dias_sem_aula", res.DiasSemAula).
		Msg("seed finished")

	return res, nil
}

func (s *Seeder) seedAlunos(ctx context.Context) (int, error) {
	created := 0
	for _, f := range alunos {
		born, err := parseDay(f.bornDate)
		if err != nil {
			return created, err
		}

		existing, err := s.alunos.GetByName(ctx, f.name)
		if err != nil {
			return created, err
		}
		if hasAluno(existing, born) {
			continue
		}

		if _, err := s.alunos.Save(ctx, &model.Aluno{Name: f.name, BornDate: born, ClassShift: f.classShift}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func hasAluno(list []model.Aluno, born time.Time) bool {
	for _, a := range list {
		if a.BornDate.Equal(born) {
			return true
		}
	}
	return false
}

func (s *Seeder) seedProfessores(ctx context.Context) (int, error) {
	created := 0
	for _, f := range professores {
		_, err := s.professores.GetByEmail(ctx, f.email)
		if err == nil {
			continue
		}
		if !sqlerr.IsNotFound(err) {
			return created, err
		}

		p, err := model.NewProfessor(f.name, f.email, f.password, s.bcryptCost)
		if err != nil {
			return created, err
		}
		if _, err := s.professores.Save(ctx, p); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedPeriodo(ctx context.Context, f periodoFixture) (bool, int, error) {
	start, err := parseDay(f.start)
	if err != nil {
		return false, 0, err
	}
	end, err := parseDay(f.end)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.periodos.GetByRange(ctx, start, end)
	if err != nil {
		return false, 0, err
	}

	var periodo *model.PeriodoLetivo
	created := false
	if len(existing) > 0 {
		periodo = &existing[0]
	} else {
		periodo, err = s.periodos.Save(ctx, &model.PeriodoLetivo{StartDate: start, EndDate: end, ClassShift: f.classShift})
		if err != nil {
			return false, 0, err
		}
		created = true
	}

	current, err := s.dias.ListByPeriodoLetivo(ctx, periodo.ID)
	if err != nil {
		return created, 0, err
	}
	taken := make(map[string]bool, len(current))
	for _, d := range current {
		taken[d.Date.Format(model.DateLayout)] = true
	}

	dias := 0
	for _, h := range f.holidays {
		if taken[h] {
			continue
		}
		date, err := parseDay(h)
		if err != nil {
			return created, dias, err
		}
		if _, err := s.dias.Save(ctx, &model.DiaSemAula{PeriodoLetivoID: periodo.ID, Date: date, Reason: holidayReason}); err != nil {
			return created, dias, err
		}
		dias++
	}
	return created, dias, nil
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid fixture date %q: %w", s, err)
	}
	return t, nil
}
