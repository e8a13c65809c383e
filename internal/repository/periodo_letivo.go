package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

const (
	periodoLetivoEntity  = "periodo_letivo"
	periodoLetivoColumns = "id, start_date, end_date, class_shift"
)

// PeriodoLetivoRepository persists academic terms.
type PeriodoLetivoRepository struct {
	store
}

func NewPeriodoLetivoRepository(db DBTX, queryTimeout time.Duration) *PeriodoLetivoRepository {
	return &PeriodoLetivoRepository{store: store{db: db, timeout: queryTimeout}}
}

func (r *PeriodoLetivoRepository) Save(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromPeriodoLetivo(*p)
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO periodo_letivo (start_date, end_date, class_shift) VALUES ($1, $2, $3) RETURNING id`,
		row.StartDate, row.EndDate, row.ClassShift)
	if err != nil {
		return nil, sqlerr.Wrap(periodoLetivoEntity, "save", err)
	}

	p.ID = id
	return p, nil
}

func (r *PeriodoLetivoRepository) GetByID(ctx context.Context, id int64) (*model.PeriodoLetivo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := queryOne[periodoLetivoRow](ctx, r.db,
		`SELECT `+periodoLetivoColumns+` FROM periodo_letivo WHERE id = $1`, id)
	if err != nil {
		return nil, sqlerr.Wrap(periodoLetivoEntity, "get_by_id", err)
	}

	p := row.toModel()
	return &p, nil
}

// GetByRange returns the terms with exactly these bounds, oldest first.
func (r *PeriodoLetivoRepository) GetByRange(ctx context.Context, start, end time.Time) ([]model.PeriodoLetivo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[periodoLetivoRow](ctx, r.db,
		`SELECT `+periodoLetivoColumns+` FROM periodo_letivo WHERE start_date = $1 AND end_date = $2 ORDER BY id`,
		start, end)
	if err != nil {
		return nil, sqlerr.Wrap(periodoLetivoEntity, "get_by_range", err)
	}

	return toModels[model.PeriodoLetivo](rows), nil
}

func (r *PeriodoLetivoRepository) Update(ctx context.Context, p *model.PeriodoLetivo) (*model.PeriodoLetivo, error) {
	if p == nil || p.ID == 0 {
		return nil, sqlerr.MissingID(periodoLetivoEntity, "update")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromPeriodoLetivo(*p)
	err := execAffecting(ctx, r.db, periodoLetivoEntity, "update",
		`UPDATE periodo_letivo SET start_date = $1, end_date = $2, class_shift = $3 WHERE id = $4`,
		row.StartDate, row.EndDate, row.ClassShift, p.ID)
	if err != nil {
		return nil, sqlerr.Wrap(periodoLetivoEntity, "update", err)
	}

	return p, nil
}

// Delete removes only the term. Days without class still pointing at it make
// the database reject the delete; use DeleteWithDiasSemAula to remove both.
func (r *PeriodoLetivoRepository) Delete(ctx context.Context, p *model.PeriodoLetivo) error {
	if p == nil || p.ID == 0 {
		return sqlerr.MissingID(periodoLetivoEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := execAffecting(ctx, r.db, periodoLetivoEntity, "delete", `DELETE FROM periodo_letivo WHERE id = $1`, p.ID)
	return sqlerr.Wrap(periodoLetivoEntity, "delete", err)
}

// DeleteWithDiasSemAula removes the term and all of its days without class
// in one transaction.
func (r *PeriodoLetivoRepository) DeleteWithDiasSemAula(ctx context.Context, p *model.PeriodoLetivo) error {
	if p == nil || p.ID == 0 {
		return sqlerr.MissingID(periodoLetivoEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM dia_sem_aula WHERE periodo_letivo_id = $1`, p.ID); err != nil {
			return err
		}
		return execAffecting(ctx, tx, periodoLetivoEntity, "delete", `DELETE FROM periodo_letivo WHERE id = $1`, p.ID)
	})
	return sqlerr.Wrap(periodoLetivoEntity, "delete", err)
}
