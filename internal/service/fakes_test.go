package service

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"

	"github.com/bhzconnection/escola/internal/lib/password"
	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/repository"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

type fakeProfessores struct {
	byID   map[int64]model.Professor
	nextID int64
}

func newFakeProfessores() *fakeProfessores {
	return &fakeProfessores{byID: map[int64]model.Professor{}}
}

func (f *fakeProfessores) Save(_ context.Context, p *model.Professor) (*model.Professor, error) {
	f.nextID++
	p.ID = f.nextID
	f.byID[p.ID] = *p
	return p, nil
}

func (f *fakeProfessores) GetByID(_ context.Context, id int64) (*model.Professor, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("professor", "get")
	}
	return &p, nil
}

func (f *fakeProfessores) GetByName(_ context.Context, name string) ([]model.Professor, error) {
	out := []model.Professor{}
	for _, p := range f.byID {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfessores) Delete(_ context.Context, p *model.Professor) error {
	if _, ok := f.byID[p.ID]; !ok {
		return sqlerr.NotFound("professor", "delete")
	}
	delete(f.byID, p.ID)
	return nil
}

func (f *fakeProfessores) Authenticate(_ context.Context, email, plainPassword string) (*model.Professor, repository.LoginOutcome, error) {
	for _, p := range f.byID {
		if p.Email != email {
			continue
		}
		ok, err := password.Compare(p.PasswordHash, plainPassword)
		if err != nil {
			return nil, repository.LoginMismatch, err
		}
		if !ok {
			return nil, repository.LoginMismatch, nil
		}
		return &p, repository.LoginOK, nil
	}
	return nil, repository.LoginUnknownUser, nil
}

type fakeAlunos struct {
	byID   map[int64]model.Aluno
	links  map[int64][]model.ResponsavelPorAluno
	nextID int64

	listErr error
}

func newFakeAlunos() *fakeAlunos {
	return &fakeAlunos{byID: map[int64]model.Aluno{}, links: map[int64][]model.ResponsavelPorAluno{}}
}

func (f *fakeAlunos) Save(_ context.Context, a *model.Aluno) (*model.Aluno, error) {
	f.nextID++
	a.ID = f.nextID
	f.byID[a.ID] = *a
	return a, nil
}

func (f *fakeAlunos) GetByID(_ context.Context, id int64) (*model.Aluno, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("aluno", "get")
	}
	return &a, nil
}

func (f *fakeAlunos) GetByName(_ context.Context, name string) ([]model.Aluno, error) {
	out := []model.Aluno{}
	for _, a := range f.byID {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlunos) Update(_ context.Context, a *model.Aluno) (*model.Aluno, error) {
	if _, ok := f.byID[a.ID]; !ok {
		return nil, sqlerr.NotFound("aluno", "update")
	}
	f.byID[a.ID] = *a
	return a, nil
}

func (f *fakeAlunos) Delete(_ context.Context, a *model.Aluno) error {
	if _, ok := f.byID[a.ID]; !ok {
		return sqlerr.NotFound("aluno", "delete")
	}
	delete(f.byID, a.ID)
	delete(f.links, a.ID)
	return nil
}

func (f *fakeAlunos) LinkResponsavel(_ context.Context, alunoID, responsavelID int64) error {
	f.links[alunoID] = append(f.links[alunoID], model.ResponsavelPorAluno{ID: responsavelID})
	return nil
}

func (f *fakeAlunos) UnlinkResponsavel(_ context.Context, alunoID, responsavelID int64) error {
	kept := f.links[alunoID][:0]
	found := false
	for _, r := range f.links[alunoID] {
		if r.ID == responsavelID {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return sqlerr.NotFound("responsavel_aluno", "unlink")
	}
	f.links[alunoID] = kept
	return nil
}

func (f *fakeAlunos) ListResponsaveis(_ context.Context, alunoID int64) ([]model.ResponsavelPorAluno, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.ResponsavelPorAluno{}, f.links[alunoID]...), nil
}

type fakeResponsaveis struct {
	byID   map[int64]model.ResponsavelPorAluno
	nextID int64
}

func newFakeResponsaveis() *fakeResponsaveis {
	return &fakeResponsaveis{byID: map[int64]model.ResponsavelPorAluno{}}
}

func (f *fakeResponsaveis) Save(_ context.Context, r *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error) {
	f.nextID++
	r.ID = f.nextID
	f.byID[r.ID] = *r
	return r, nil
}

func (f *fakeResponsaveis) GetByID(_ context.Context, id int64) (*model.ResponsavelPorAluno, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("responsavel_por_aluno", "get")
	}
	return &r, nil
}

func (f *fakeResponsaveis) Update(_ context.Context, r *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error) {
	f.byID[r.ID] = *r
	return r, nil
}

func (f *fakeResponsaveis) Delete(_ context.Context, r *model.ResponsavelPorAluno) error {
	delete(f.byID, r.ID)
	return nil
}

func (f *fakeResponsaveis) ListAlunos(_ context.Context, _ int64) ([]model.Aluno, error) {
	return []model.Aluno{}, nil
}

type fakePresencas struct {
	byID   map[int64]model.Presenca
	nextID int64
}

func newFakePresencas() *fakePresencas {
	return &fakePresencas{byID: map[int64]model.Presenca{}}
}

func (f *fakePresencas) Save(_ context.Context, p *model.Presenca) (*model.Presenca, error) {
	f.nextID++
	p.ID = f.nextID
	f.byID[p.ID] = *p
	return p, nil
}

func (f *fakePresencas) GetByID(_ context.Context, id int64) (*model.Presenca, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("presenca", "get")
	}
	return &p, nil
}

func (f *fakePresencas) ListByAluno(_ context.Context, alunoID int64) ([]model.Presenca, error) {
	out := []model.Presenca{}
	for _, p := range f.byID {
		if p.AlunoID == alunoID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePresencas) Update(_ context.Context, p *model.Presenca) (*model.Presenca, error) {
	f.byID[p.ID] = *p
	return p, nil
}

func (f *fakePresencas) Delete(_ context.Context, p *model.Presenca) error {
	delete(f.byID, p.ID)
	return nil
}

type fakePeriodos struct {
	byID      map[int64]model.PeriodoLetivo
	nextID    int64
	cascaded  []int64
	dias      *fakeDias
	updateErr error
}

func (f *fakePeriodos) Save(_ context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	f.nextID++
	p.ID = f.nextID
	f.byID[p.ID] = *p
	return p, nil
}

func (f *fakePeriodos) GetByID(_ context.Context, id int64) (*model.PeriodoLetivo, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("periodo_letivo", "get")
	}
	return &p, nil
}

func (f *fakePeriodos) Update(_ context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.byID[p.ID] = *p
	return p, nil
}

func (f *fakePeriodos) DeleteWithDiasSemAula(_ context.Context, p *model.PeriodoLetivo) error {
	if _, ok := f.byID[p.ID]; !ok {
		return sqlerr.NotFound("periodo_letivo", "delete_with_dias_sem_aula")
	}
	for id, d := range f.dias.byID {
		if d.PeriodoLetivoID == p.ID {
			delete(f.dias.byID, id)
		}
	}
	delete(f.byID, p.ID)
	f.cascaded = append(f.cascaded, p.ID)
	return nil
}

type fakeDias struct {
	byID   map[int64]model.DiaSemAula
	nextID int64
}

func (f *fakeDias) Save(_ context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error) {
	f.nextID++
	d.ID = f.nextID
	f.byID[d.ID] = *d
	return d, nil
}

func (f *fakeDias) GetByID(_ context.Context, id int64) (*model.DiaSemAula, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("dia_sem_aula", "get")
	}
	return &d, nil
}

func (f *fakeDias) ListByPeriodoLetivo(_ context.Context, periodoLetivoID int64) ([]model.DiaSemAula, error) {
	out := []model.DiaSemAula{}
	for _, d := range f.byID {
		if d.PeriodoLetivoID == periodoLetivoID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDias) Delete(_ context.Context, d *model.DiaSemAula) error {
	delete(f.byID, d.ID)
	return nil
}

func newFakeCalendario() (*fakePeriodos, *fakeDias) {
	dias := &fakeDias{byID: map[int64]model.DiaSemAula{}}
	return &fakePeriodos{byID: map[int64]model.PeriodoLetivo{}, dias: dias}, dias
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

var errRedisDown = errors.New("redis: connection refused")
