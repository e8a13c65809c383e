package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhzconnection/escola/internal/config"
	"github.com/bhzconnection/escola/internal/errs"
	"github.com/bhzconnection/escola/internal/handler"
	"github.com/bhzconnection/escola/internal/lib/password"
	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/repository"
	"github.com/bhzconnection/escola/internal/server"
	"github.com/bhzconnection/escola/internal/service"
)

var (
	alunoCols     = []string{"id", "name", "born_date", "class_shift"}
	professorCols = []string{"id", "name", "email", "password_hash"}
	periodoCols   = []string{"id", "start_date", "end_date", "class_shift"}
)

func day(s string) time.Time {
	t, _ := time.Parse(model.DateLayout, s)
	return t
}

func newTestRouter(t *testing.T) (http.Handler, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Auth:    config.AuthConfig{BcryptCost: 4, LoginRate: 100, LoginBurst: 100},
		},
		Logger: &logger,
	}

	services, err := service.NewService(s, repository.NewRepositories(mock, time.Second))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services)), mock
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestStatusWithoutDependencies(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[handler.HealthResponse](t, rec).Status)
}

func TestCreateAndGetAluno(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`INSERT INTO aluno`).
		WithArgs("Pedro Souza", day("2015-03-10"), model.ShiftManha).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	rec := do(r, http.MethodPost, "/api/v1/alunos", `{"name":"Pedro Souza","bornDate":"2015-03-10","classShift":"Manhã"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[handler.AlunoResponse](t, rec)
	assert.Equal(t, handler.AlunoResponse{ID: 1, Name: "Pedro Souza", BornDate: "2015-03-10", ClassShift: model.ShiftManha}, created)

	mock.ExpectQuery(`SELECT (.+) FROM aluno WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(alunoCols).AddRow(int64(1), "Pedro Souza", day("2015-03-10"), model.ShiftManha))

	rec = do(r, http.MethodGet, "/api/v1/alunos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[handler.AlunoResponse](t, rec))
}

func TestGetAlunoNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM aluno WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(alunoCols))

	rec := do(r, http.MethodGet, "/api/v1/alunos/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ALUNO_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)
}

func TestSearchAlunoWithoutMatchesIsEmptyList(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM aluno WHERE name = \$1`).
		WithArgs("Ninguém").
		WillReturnRows(pgxmock.NewRows(alunoCols))

	rec := do(r, http.MethodGet, "/api/v1/alunos?name=Ningu%C3%A9m", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateAlunoValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/alunos", `{"name":"","bornDate":"10/03/2015","classShift":"Madrugada"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	fields := map[string]string{}
	for _, fe := range body.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", fields["bornDate"])
	assert.Contains(t, fields["classShift"], "must be one of")
}

func TestLogin(t *testing.T) {
	r, mock := newTestRouter(t)

	hash, err := password.Hash("segredo123", 4)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM professor WHERE email = \$1`).
		WithArgs("william@example.org").
		WillReturnRows(pgxmock.NewRows(professorCols).AddRow(int64(1), "William", "william@example.org", hash))

	rec := do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"william@example.org","password":"segredo123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, "William", decode[model.Professor](t, rec).Name)

	mock.ExpectQuery(`SELECT (.+) FROM professor WHERE email = \$1`).
		WithArgs("william@example.org").
		WillReturnRows(pgxmock.NewRows(professorCols).AddRow(int64(1), "William", "william@example.org", hash))

	rec = do(r, http.MethodPost, "/api/v1/auth/login", `{"email":"william@example.org","password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePeriodoInvertedRange(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/periodos-letivos", `{"startDate":"2023-06-30","endDate":"2023-01-01","classShift":"Tarde"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.CodePeriodoInvalidRange, decode[errs.HTTPError](t, rec).Code)
}

func TestAddDiaSemAulaUsesPathPeriodo(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM periodo_letivo WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(periodoCols).AddRow(int64(3), day("2023-01-01"), day("2023-06-30"), model.ShiftManha))
	mock.ExpectQuery(`INSERT INTO dia_sem_aula`).
		WithArgs(int64(3), day("2023-04-21"), "Feriado").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	rec := do(r, http.MethodPost, "/api/v1/periodos-letivos/3/dias-sem-aula", `{"date":"2023-04-21","reason":"Feriado","periodoLetivoId":99}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, handler.DiaSemAulaResponse{ID: 10, PeriodoLetivoID: 3, Date: "2023-04-21", Reason: "Feriado"},
		decode[handler.DiaSemAulaResponse](t, rec))
}

func TestDeleteProfessorNoContent(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM professor WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	rec := do(r, http.MethodDelete, "/api/v1/professores/4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvalidIDParam(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/presencas/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfessorPasswordOverByteLimit(t *testing.T) {
	r, _ := newTestRouter(t)

	// 40 characters pass the max tag but take 80 bytes.
	body := `{"name":"William","email":"william@example.org","password":"` + strings.Repeat("ã", 40) + `"}`
	rec := do(r, http.MethodPost, "/api/v1/professores", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	got := decode[errs.HTTPError](t, rec)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "password", got.Errors[0].Field)
	assert.Equal(t, "must be at most 72 bytes", got.Errors[0].Error)
}
