package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bhzconnection/escola/internal/errs"
	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/repository"
)

// AuthService verifies teacher credentials.
type AuthService struct {
	professores ProfessorStore
}

func NewAuthService(professores ProfessorStore) *AuthService {
	return &AuthService{professores: professores}
}

// Login returns the teacher matching email and password.
//
// Unknown email and wrong password produce the same 401 so callers cannot
// probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.Professor, error) {
	p, outcome, err := s.professores.Authenticate(ctx, email, plainPassword)
	if err != nil {
		return nil, err
	}

	if outcome != repository.LoginOK {
		zerolog.Ctx(ctx).Info().
			Str("outcome", outcome.String()).
			Msg("login rejected")
		return nil, errs.NewUnauthorizedError("Invalid email or password", true)
	}

	return p, nil
}
