package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bhzconnection/escola/internal/handler"
	"github.com/bhzconnection/escola/internal/middleware"
)

func registerV1Routes(v1 *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	auth := v1.Group("/auth")
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK, &handler.LoginRequest{}), m.RateLimit.Login())

	professores := v1.Group("/professores")
	professores.POST("", handler.Handle(h.Professor.Handler, h.Professor.Create, http.StatusCreated, &handler.CreateProfessorRequest{}))
	professores.GET("", handler.Handle(h.Professor.Handler, h.Professor.SearchByName, http.StatusOK, &handler.SearchByNameRequest{}))
	professores.GET("/:id", handler.Handle(h.Professor.Handler, h.Professor.Get, http.StatusOK, &handler.IDRequest{}))
	professores.DELETE("/:id", handler.HandleNoContent(h.Professor.Handler, h.Professor.Delete, http.StatusNoContent, &handler.IDRequest{}))

	alunos := v1.Group("/alunos")
	alunos.POST("", handler.Handle(h.Aluno.Handler, h.Aluno.Create, http.StatusCreated, &handler.CreateAlunoRequest{}))
	alunos.GET("", handler.Handle(h.Aluno.Handler, h.Aluno.SearchByName, http.StatusOK, &handler.SearchByNameRequest{}))
	alunos.GET("/:id", handler.Handle(h.Aluno.Handler, h.Aluno.Get, http.StatusOK, &handler.IDRequest{}))
	alunos.PUT("/:id", handler.Handle(h.Aluno.Handler, h.Aluno.Update, http.StatusOK, &handler.UpdateAlunoRequest{}))
	alunos.DELETE("/:id", handler.HandleNoContent(h.Aluno.Handler, h.Aluno.Delete, http.StatusNoContent, &handler.IDRequest{}))
	alunos.GET("/:id/responsaveis", handler.Handle(h.Aluno.Handler, h.Aluno.ListResponsaveis, http.StatusOK, &handler.IDRequest{}))
	alunos.PUT("/:id/responsaveis/:responsavelId", handler.HandleNoContent(h.Aluno.Handler, h.Aluno.LinkResponsavel, http.StatusNoContent, &handler.AlunoResponsavelRequest{}))
	alunos.DELETE("/:id/responsaveis/:responsavelId", handler.HandleNoContent(h.Aluno.Handler, h.Aluno.UnlinkResponsavel, http.StatusNoContent, &handler.AlunoResponsavelRequest{}))

	responsaveis := v1.Group("/responsaveis")
	responsaveis.POST("", handler.Handle(h.Responsavel.Handler, h.Responsavel.Create, http.StatusCreated, &handler.CreateResponsavelRequest{}))
	responsaveis.GET("/:id", handler.Handle(h.Responsavel.Handler, h.Responsavel.Get, http.StatusOK, &handler.IDRequest{}))
	responsaveis.PUT("/:id", handler.Handle(h.Responsavel.Handler, h.Responsavel.Update, http.StatusOK, &handler.UpdateResponsavelRequest{}))
	responsaveis.DELETE("/:id", handler.HandleNoContent(h.Responsavel.Handler, h.Responsavel.Delete, http.StatusNoContent, &handler.IDRequest{}))
	responsaveis.GET("/:id/alunos", handler.Handle(h.Responsavel.Handler, h.Responsavel.ListAlunos, http.StatusOK, &handler.IDRequest{}))

	presencas := v1.Group("/presencas")
	presencas.POST("", handler.Handle(h.Presenca.Handler, h.Presenca.Create, http.StatusCreated, &handler.CreatePresencaRequest{}))
	presencas.GET("", handler.Handle(h.Presenca.Handler, h.Presenca.ListByAluno, http.StatusOK, &handler.ListPresencasRequest{}))
	presencas.GET("/:id", handler.Handle(h.Presenca.Handler, h.Presenca.Get, http.StatusOK, &handler.IDRequest{}))
	presencas.PUT("/:id", handler.Handle(h.Presenca.Handler, h.Presenca.Update, http.StatusOK, &handler.UpdatePresencaRequest{}))
	presencas.DELETE("/:id", handler.HandleNoContent(h.Presenca.Handler, h.Presenca.Delete, http.StatusNoContent, &handler.IDRequest{}))

	periodos := v1.Group("/periodos-letivos")
	periodos.POST("", handler.Handle(h.Calendario.Handler, h.Calendario.CreatePeriodo, http.StatusCreated, &handler.CreatePeriodoLetivoRequest{}))
	periodos.GET("/:id", handler.Handle(h.Calendario.Handler, h.Calendario.GetPeriodo, http.StatusOK, &handler.IDRequest{}))
	periodos.PUT("/:id", handler.Handle(h.Calendario.Handler, h.Calendario.UpdatePeriodo, http.StatusOK, &handler.UpdatePeriodoLetivoRequest{}))
	periodos.DELETE("/:id", handler.HandleNoContent(h.Calendario.Handler, h.Calendario.DeletePeriodo, http.StatusNoContent, &handler.IDRequest{}))
	periodos.GET("/:id/dias-sem-aula", handler.Handle(h.Calendario.Handler, h.Calendario.ListDiasSemAula, http.StatusOK, &handler.IDRequest{}))
	periodos.POST("/:id/dias-sem-aula", handler.Handle(h.Calendario.Handler, h.Calendario.AddDiaSemAula, http.StatusCreated, &handler.CreateDiaSemAulaRequest{}))

	dias := v1.Group("/dias-sem-aula")
	dias.GET("/:id", handler.Handle(h.Calendario.Handler, h.Calendario.GetDiaSemAula, http.StatusOK, &handler.IDRequest{}))
	dias.DELETE("/:id", handler.HandleNoContent(h.Calendario.Handler, h.Calendario.DeleteDiaSemAula, http.StatusNoContent, &handler.IDRequest{}))
}
