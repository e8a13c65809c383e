package repository

import (
	"context"
	"time"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

const (
	diaSemAulaEntity  = "dia_sem_aula"
	diaSemAulaColumns = "id, periodo_letivo_id, date, reason"
)

// DiaSemAulaRepository persists days without class. Each one belongs to
// exactly one PeriodoLetivo.
type DiaSemAulaRepository struct {
	store
}

func NewDiaSemAulaRepository(db DBTX, queryTimeout time.Duration) *DiaSemAulaRepository {
	return &DiaSemAulaRepository{store: store{db: db, timeout: queryTimeout}}
}

func (r *DiaSemAulaRepository) Save(ctx context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromDiaSemAula(*d)
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO dia_sem_aula (periodo_letivo_id, date, reason) VALUES ($1, $2, $3) RETURNING id`,
		row.PeriodoLetivoID, row.Date, row.Reason)
	if err != nil {
		return nil, sqlerr.Wrap(diaSemAulaEntity, "save", err)
	}

	d.ID = id
	return d, nil
}

func (r *DiaSemAulaRepository) GetByID(ctx context.Context, id int64) (*model.DiaSemAula, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := queryOne[diaSemAulaRow](ctx, r.db,
		`SELECT `+diaSemAulaColumns+` FROM dia_sem_aula WHERE id = $1`, id)
	if err != nil {
		return nil, sqlerr.Wrap(diaSemAulaEntity, "get_by_id", err)
	}

	d := row.toModel()
	return &d, nil
}

// ListByPeriodoLetivo returns the term's days without class in date order.
func (r *DiaSemAulaRepository) ListByPeriodoLetivo(ctx context.Context, periodoLetivoID int64) ([]model.DiaSemAula, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[diaSemAulaRow](ctx, r.db,
		`SELECT `+diaSemAulaColumns+` FROM dia_sem_aula WHERE periodo_letivo_id = $1 ORDER BY date, id`, periodoLetivoID)
	if err != nil {
		return nil, sqlerr.Wrap(diaSemAulaEntity, "list_by_periodo_letivo", err)
	}

	return toModels[model.DiaSemAula](rows), nil
}

func (r *DiaSemAulaRepository) Update(ctx context.Context, d *model.DiaSemAula) (*model.DiaSemAula, error) {
	if d == nil || d.ID == 0 {
		return nil, sqlerr.MissingID(diaSemAulaEntity, "update")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromDiaSemAula(*d)
	err := execAffecting(ctx, r.db, diaSemAulaEntity, "update",
		`UPDATE dia_sem_aula SET periodo_letivo_id = $1, date = $2, reason = $3 WHERE id = $4`,
		row.PeriodoLetivoID, row.Date, row.Reason, d.ID)
	if err != nil {
		return nil, sqlerr.Wrap(diaSemAulaEntity, "update", err)
	}

	return d, nil
}

func (r *DiaSemAulaRepository) Delete(ctx context.Context, d *model.DiaSemAula) error {
	if d == nil || d.ID == 0 {
		return sqlerr.MissingID(diaSemAulaEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := execAffecting(ctx, r.db, diaSemAulaEntity, "delete", `DELETE FROM dia_sem_aula WHERE id = $1`, d.ID)
	return sqlerr.Wrap(diaSemAulaEntity, "delete", err)
}

// DeleteByPeriodoLetivo removes every day without class of a term and
// returns how many were removed.
func (r *DiaSemAulaRepository) DeleteByPeriodoLetivo(ctx context.Context, periodoLetivoID int64) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM dia_sem_aula WHERE periodo_letivo_id = $1`, periodoLetivoID)
	if err != nil {
		return 0, sqlerr.Wrap(diaSemAulaEntity, "delete_by_periodo_letivo", err)
	}
	return tag.RowsAffected(), nil
}
