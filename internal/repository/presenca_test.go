package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

var presencaCols = []string{"id", "aluno_id", "status", "document", "reason_missing_class"}

func TestPresencaSaveAndListByAluno(t *testing.T) {
	mock := newMock(t)
	repo := NewPresencaRepository(mock, 0)
	ctx := context.Background()

	falta := &model.Presenca{AlunoID: 1, Status: model.StatusFalta, ReasonMissingClass: "doente"}

	mock.ExpectQuery(`INSERT INTO presenca`).
		WithArgs(int64(1), model.StatusFalta, "", "doente").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(`FROM presenca WHERE aluno_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(presencaCols).
			AddRow(int64(9), int64(1), model.StatusPresente, "", "").
			AddRow(int64(10), int64(1), model.StatusFalta, "", "doente"))

	saved, err := repo.Save(ctx, falta)
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)

	list, err := repo.ListByAluno(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, *saved, list[1])
}

func TestPresencaSaveUnknownAluno(t *testing.T) {
	mock := newMock(t)
	repo := NewPresencaRepository(mock, 0)

	mock.ExpectQuery(`INSERT INTO presenca`).
		WithArgs(int64(404), model.StatusPresente, "", "").
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `insert or update on table "presenca" violates foreign key constraint "presenca_aluno_id_fkey"`,
			TableName:      "presenca",
			ConstraintName: "presenca_aluno_id_fkey",
		})

	_, err := repo.Save(context.Background(), &model.Presenca{AlunoID: 404, Status: model.StatusPresente})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The referenced Aluno does not exist")
}

func TestPresencaUpdateAndDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewPresencaRepository(mock, 0)
	ctx := context.Background()

	p := &model.Presenca{ID: 10, AlunoID: 1, Status: model.StatusFaltaJustificada, Document: "atestado.pdf", ReasonMissingClass: "doente"}

	mock.ExpectExec(`UPDATE presenca SET`).
		WithArgs(int64(1), model.StatusFaltaJustificada, "atestado.pdf", "doente", int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM presenca WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(`FROM presenca WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows(presencaCols))

	_, err := repo.Update(ctx, p)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, p))

	_, err = repo.GetByID(ctx, 10)
	assert.True(t, sqlerr.IsNotFound(err))
}
