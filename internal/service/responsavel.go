package service

import (
	"context"

	"github.com/bhzconnection/escola/internal/model"
)

type ResponsavelService struct {
	responsaveis ResponsavelStore
}

func NewResponsavelService(responsaveis ResponsavelStore) *ResponsavelService {
	return &ResponsavelService{responsaveis: responsaveis}
}

func (s *ResponsavelService) Create(ctx context.Context, r *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error) {
	return s.responsaveis.Save(ctx, r)
}

func (s *ResponsavelService) Get(ctx context.Context, id int64) (*model.ResponsavelPorAluno, error) {
	return s.responsaveis.GetByID(ctx, id)
}

func (s *ResponsavelService) Update(ctx context.Context, r *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error) {
	return s.responsaveis.Update(ctx, r)
}

func (s *ResponsavelService) Delete(ctx context.Context, id int64) error {
	return s.responsaveis.Delete(ctx, &model.ResponsavelPorAluno{ID: id})
}

func (s *ResponsavelService) ListAlunos(ctx context.Context, responsavelID int64) ([]model.Aluno, error) {
	if _, err := s.responsaveis.GetByID(ctx, responsavelID); err != nil {
		return nil, err
	}
	return s.responsaveis.ListAlunos(ctx, responsavelID)
}
