package service

import (
	"github.com/bhzconnection/escola/internal/lib/job"
	"github.com/bhzconnection/escola/internal/repository"
	"github.com/bhzconnection/escola/internal/server"
)

type Services struct {
	Auth        *AuthService
	Professor   *ProfessorService
	Aluno       *AlunoService
	Responsavel *ResponsavelService
	Presenca    *PresencaService
	Calendario  *CalendarioService
	Job         *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job.Client
	}

	return &Services{
		Auth:        NewAuthService(repos.Professores),
		Professor:   NewProfessorService(repos.Professores, s.Config.Auth.BcryptCost),
		Aluno:       NewAlunoService(repos.Alunos, repos.Responsaveis),
		Responsavel: NewResponsavelService(repos.Responsaveis),
		Presenca:    NewPresencaService(repos.Presencas, repos.Alunos, tasks),
		Calendario:  NewCalendarioService(repos.PeriodosLetivo, repos.DiasSemAula),
		Job:         s.Job,
	}, nil
}
