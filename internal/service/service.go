// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, enforces the school rules
// (calendar ranges, existence of linked records, absence notifications)
// and calls repository methods to interact with the data.
//
// Services depend on the small Store interfaces below rather than on the
// concrete repositories, so each rule can be tested with in-memory fakes.
package service

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/repository"
)

type ProfessorStore interface {
	Save(ctx context.Context, p *model.Professor) (*model.Professor, error)
	GetByID(ctx context.Context, id int64) (*model.Professor, error)
	GetByName(ctx context.Context, name string) ([]model.Professor, error)
	Delete(ctx context.Context, p *model.Professor) error
	Authenticate(ctx context.Context, email, plainPassword string) (*model.Professor, repository.LoginOutcome, error)
}

type AlunoStore interface {
	Save(ctx context.Context, a *model.Aluno) (*model.Aluno, error)
	GetByID(ctx context.Context, id int64) (*model.Aluno, error)
	GetByName(ctx context.Context, name string) ([]model.Aluno, error)
	Update(ctx context.Context, a *model.Aluno) (*model.Aluno, error)
	Delete(ctx context.Context, a *model.Aluno) error
	LinkResponsavel(ctx context.Context, alunoID, responsavelID int64) error
	UnlinkResponsavel(ctx context.Context, alunoID, responsavelID int64) error
	ListResponsaveis(ctx context.Context, alunoID int64) ([]model.ResponsavelPorAluno, error)
}

type ResponsavelStore interface {
	Save(ctx context.Context, r *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error)
	GetByID(ctx context.Context, id int64) (*model.ResponsavelPorAluno, error)
	Update(ctx context.Context, r *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error)
	Delete(ctx context.Context, r *model.ResponsavelPorAluno) error
	ListAlunos(ctx context.Context, responsavelID int64) ([]model.Aluno, error)
}

type PresencaStore interface {
	Save(ctx context.Context, p *model.Presenca) (*model.Presenca, error)
	GetByID(ctx context.Context, id int64) (*model.Presenca, error)
	ListByAluno(ctx context.Context, alunoID int64) ([]model.Presenca, error)
	Update(ctx context.Context, p *model.Presenca) (*model.Presenca, error)
	Delete(ctx context.Context, p *model.Presenca) error
}

type PeriodoLetivoStore interface {
	Save(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error)
	GetByID(ctx context.Context, id int64) (*model.PeriodoLetivo, error)
	Update(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error)
	DeleteWithDiasSemAula(ctx context.Context, p *model.PeriodoLetivo) error
}

type DiaSemAulaStore interface {
	Save(ctx context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error)
	GetByID(ctx context.Context, id int64) (*model.DiaSemAula, error)
	ListByPeriodoLetivo(ctx context.Context, periodoLetivoID int64) ([]model.DiaSemAula, error)
	Delete(ctx context.Context, d *model.DiaSemAula) error
}

// TaskEnqueuer pushes background jobs. *asynq.Client implements it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
