// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package,
// calls the matching service and shapes the response. Dates travel as
// YYYY-MM-DD strings on the wire.
package handler

import (
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Professor   *ProfessorHandler
	Aluno       *AlunoHandler
	Responsavel *ResponsavelHandler
	Presenca    *PresencaHandler
	Calendario  *CalendarioHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Auth:        NewAuthHandler(s, services.Auth),
		Professor:   NewProfessorHandler(s, services.Professor),
		Aluno:       NewAlunoHandler(s, services.Aluno),
		Responsavel: NewResponsavelHandler(s, services.Responsavel),
		Presenca:    NewPresencaHandler(s, services.Presenca),
		Calendario:  NewCalendarioHandler(s, services.Calendario),
	}
}
