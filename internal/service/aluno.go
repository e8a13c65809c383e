package service

import (
	"context"

	"github.com/bhzconnection/escola/internal/model"
)

// AlunoService manages students and their guardian links.
type AlunoService struct {
	alunos       AlunoStore
	responsaveis ResponsavelStore
}

func NewAlunoService(alunos AlunoStore, responsaveis ResponsavelStore) *AlunoService {
	return &AlunoService{alunos: alunos, responsaveis: responsaveis}
}

func (s *AlunoService) Create(ctx context.Context, a *model.Aluno) (*model.Aluno, error) {
	return s.alunos.Save(ctx, a)
}

func (s *AlunoService) Get(ctx context.Context, id int64) (*model.Aluno, error) {
	return s.alunos.GetByID(ctx, id)
}

func (s *AlunoService) SearchByName(ctx context.Context, name string) ([]model.Aluno, error) {
	return s.alunos.GetByName(ctx, name)
}

func (s *AlunoService) Update(ctx context.Context, a *model.Aluno) (*model.Aluno, error) {
	return s.alunos.Update(ctx, a)
}

func (s *AlunoService) Delete(ctx context.Context, id int64) error {
	return s.alunos.Delete(ctx, &model.Aluno{ID: id})
}

// LinkResponsavel links a guardian to a student. Both must exist; linking
// twice is a no-op.
func (s *AlunoService) LinkResponsavel(ctx context.Context, alunoID, responsavelID int64) error {
	if _, err := s.alunos.GetByID(ctx, alunoID); err != nil {
		return err
	}
	if _, err := s.responsaveis.GetByID(ctx, responsavelID); err != nil {
		return err
	}
	return s.alunos.LinkResponsavel(ctx, alunoID, responsavelID)
}

func (s *AlunoService) UnlinkResponsavel(ctx context.Context, alunoID, responsavelID int64) error {
	return s.alunos.UnlinkResponsavel(ctx, alunoID, responsavelID)
}

// ListResponsaveis returns the guardians of a student, or not found when the
// student does not exist.
func (s *AlunoService) ListResponsaveis(ctx context.Context, alunoID int64) ([]model.ResponsavelPorAluno, error) {
	if _, err := s.alunos.GetByID(ctx, alunoID); err != nil {
		return nil, err
	}
	return s.alunos.ListResponsaveis(ctx, alunoID)
}
