package service

import (
	"context"
	"errors"

	"github.com/bhzconnection/escola/internal/errs"
	"github.com/bhzconnection/escola/internal/lib/password"
	"github.com/bhzconnection/escola/internal/model"
)

type ProfessorService struct {
	professores ProfessorStore
	bcryptCost  int
}

func NewProfessorService(professores ProfessorStore, bcryptCost int) *ProfessorService {
	return &ProfessorService{professores: professores, bcryptCost: bcryptCost}
}

// Create hashes the password and stores the teacher.
// A duplicate email surfaces as a unique violation from the store.
func (s *ProfessorService) Create(ctx context.Context, name, email, plainPassword string) (*model.Professor, error) {
	p, err := model.NewProfessor(name, email, plainPassword, s.bcryptCost)
	if errors.Is(err, password.ErrTooLong) {
		return nil, errs.NewBadRequestError("Validation failed", true, nil,
			[]errs.FieldError{{Field: "password", Error: err.Error()}}, nil)
	}
	if err != nil {
		return nil, err
	}
	return s.professores.Save(ctx, p)
}

func (s *ProfessorService) Get(ctx context.Context, id int64) (*model.Professor, error) {
	return s.professores.GetByID(ctx, id)
}

func (s *ProfessorService) SearchByName(ctx context.Context, name string) ([]model.Professor, error) {
	return s.professores.GetByName(ctx, name)
}

func (s *ProfessorService) Delete(ctx context.Context, id int64) error {
	return s.professores.Delete(ctx, &model.Professor{ID: id})
}
