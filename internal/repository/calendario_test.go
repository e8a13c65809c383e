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

var (
	periodoCols = []string{"id", "start_date", "end_date", "class_shift"}
	diaCols     = []string{"id", "periodo_letivo_id", "date", "reason"}
)

func TestPeriodoLetivoSaveThenGet(t *testing.T) {
	mock := newMock(t)
	repo := NewPeriodoLetivoRepository(mock, 0)
	ctx := context.Background()

	p := &model.PeriodoLetivo{StartDate: day("2023-01-01"), EndDate: day("2023-06-30"), ClassShift: model.ShiftManha}

	mock.ExpectQuery(`INSERT INTO periodo_letivo`).
		WithArgs(day("2023-01-01"), day("2023-06-30"), model.ShiftManha).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`FROM periodo_letivo WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(periodoCols).AddRow(int64(1), day("2023-01-01"), day("2023-06-30"), model.ShiftManha))

	saved, err := repo.Save(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, *saved, *got)
}

func TestPeriodoLetivoDeleteKeepsChildrenRule(t *testing.T) {
	mock := newMock(t)
	repo := NewPeriodoLetivoRepository(mock, 0)

	mock.ExpectExec(`DELETE FROM periodo_letivo WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `update or delete on table "periodo_letivo" violates foreign key constraint "dia_sem_aula_periodo_letivo_id_fkey" on table "dia_sem_aula"`,
			TableName:      "dia_sem_aula",
			ConstraintName: "dia_sem_aula_periodo_letivo_id_fkey",
		})

	err := repo.Delete(context.Background(), &model.PeriodoLetivo{ID: 1})
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))
}

func TestPeriodoLetivoDeleteWithDiasSemAula(t *testing.T) {
	mock := newMock(t)
	repo := NewPeriodoLetivoRepository(mock, 0)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM dia_sem_aula WHERE periodo_letivo_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(`DELETE FROM periodo_letivo WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteWithDiasSemAula(context.Background(), &model.PeriodoLetivo{ID: 1}))
}

func TestDiaSemAulaLifecycle(t *testing.T) {
	mock := newMock(t)
	repo := NewDiaSemAulaRepository(mock, 0)
	ctx := context.Background()

	feriado := &model.DiaSemAula{PeriodoLetivoID: 1, Date: day("2023-01-02"), Reason: "Feriado"}

	mock.ExpectQuery(`INSERT INTO dia_sem_aula`).
		WithArgs(int64(1), day("2023-01-02"), "Feriado").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(`FROM dia_sem_aula WHERE periodo_letivo_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(diaCols).
			AddRow(int64(1), int64(1), day("2023-01-01"), "Feriado").
			AddRow(int64(2), int64(1), day("2023-01-02"), "Feriado"))
	mock.ExpectExec(`DELETE FROM dia_sem_aula WHERE periodo_letivo_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	saved, err := repo.Save(ctx, feriado)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.ID)

	list, err := repo.ListByPeriodoLetivo(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	n, err := repo.DeleteByPeriodoLetivo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDiaSemAulaDeleteThenGet(t *testing.T) {
	mock := newMock(t)
	repo := NewDiaSemAulaRepository(mock, 0)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM dia_sem_aula WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(`FROM dia_sem_aula WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(diaCols))

	require.NoError(t, repo.Delete(ctx, &model.DiaSemAula{ID: 2}))

	_, err := repo.GetByID(ctx, 2)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestPeriodoLetivoGetByRange(t *testing.T) {
	mock := newMock(t)
	repo := NewPeriodoLetivoRepository(mock, 0)

	mock.ExpectQuery(`FROM periodo_letivo WHERE start_date = \$1 AND end_date = \$2`).
		WithArgs(day("2023-01-01"), day("2023-06-30")).
		WillReturnRows(pgxmock.NewRows(periodoCols).AddRow(int64(1), day("2023-01-01"), day("2023-06-30"), model.ShiftManha))

	got, err := repo.GetByRange(context.Background(), day("2023-01-01"), day("2023-06-30"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	mock.ExpectQuery(`FROM periodo_letivo WHERE start_date`).
		WithArgs(day("2024-01-01"), day("2024-06-30")).
		WillReturnRows(pgxmock.NewRows(periodoCols))

	got, err = repo.GetByRange(context.Background(), day("2024-01-01"), day("2024-06-30"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
