package repository

import (
	"context"
	"time"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

const (
	presencaEntity  = "presenca"
	presencaColumns = "id, aluno_id, status, document, reason_missing_class"
)

// PresencaRepository persists attendance records.
type PresencaRepository struct {
	store
}

func NewPresencaRepository(db DBTX, queryTimeout time.Duration) *PresencaRepository {
	return &PresencaRepository{store: store{db: db, timeout: queryTimeout}}
}

func (r *PresencaRepository) Save(ctx context.Context, p *model.Presenca) (*model.Presenca, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromPresenca(*p)
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO presenca (aluno_id, status, document, reason_missing_class) VALUES ($1, $2, $3, $4) RETURNING id`,
		row.AlunoID, row.Status, row.Document, row.ReasonMissingClass)
	if err != nil {
		return nil, sqlerr.Wrap(presencaEntity, "save", err)
	}

	p.ID = id
	return p, nil
}

func (r *PresencaRepository) GetByID(ctx context.Context, id int64) (*model.Presenca, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := queryOne[presencaRow](ctx, r.db,
		`SELECT `+presencaColumns+` FROM presenca WHERE id = $1`, id)
	if err != nil {
		return nil, sqlerr.Wrap(presencaEntity, "get_by_id", err)
	}

	p := row.toModel()
	return &p, nil
}

// ListByAluno returns a student's attendance records, oldest first.
func (r *PresencaRepository) ListByAluno(ctx context.Context, alunoID int64) ([]model.Presenca, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[presencaRow](ctx, r.db,
		`SELECT `+presencaColumns+` FROM presenca WHERE aluno_id = $1 ORDER BY id`, alunoID)
	if err != nil {
		return nil, sqlerr.Wrap(presencaEntity, "list_by_aluno", err)
	}

	return toModels[model.Presenca](rows), nil
}

func (r *PresencaRepository) Update(ctx context.Context, p *model.Presenca) (*model.Presenca, error) {
	if p == nil || p.ID == 0 {
		return nil, sqlerr.MissingID(presencaEntity, "update")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromPresenca(*p)
	err := execAffecting(ctx, r.db, presencaEntity, "update",
		`UPDATE presenca SET aluno_id = $1, status = $2, document = $3, reason_missing_class = $4 WHERE id = $5`,
		row.AlunoID, row.Status, row.Document, row.ReasonMissingClass, p.ID)
	if err != nil {
		return nil, sqlerr.Wrap(presencaEntity, "update", err)
	}

	return p, nil
}

func (r *PresencaRepository) Delete(ctx context.Context, p *model.Presenca) error {
	if p == nil || p.ID == 0 {
		return sqlerr.MissingID(presencaEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := execAffecting(ctx, r.db, presencaEntity, "delete", `DELETE FROM presenca WHERE id = $1`, p.ID)
	return sqlerr.Wrap(presencaEntity, "delete", err)
}
