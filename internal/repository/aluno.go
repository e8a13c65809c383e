package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

const (
	alunoEntity      = "aluno"
	alunoLinkEntity  = "responsavel_aluno"
	alunoColumns     = "id, name, born_date, class_shift"
	alunoColumnsJoin = "a.id, a.name, a.born_date, a.class_shift"
)

// AlunoRepository persists students and their guardian links.
type AlunoRepository struct {
	store
}

func NewAlunoRepository(db DBTX, queryTimeout time.Duration) *AlunoRepository {
	return &AlunoRepository{store: store{db: db, timeout: queryTimeout}}
}

// Save inserts a and writes the generated id back into it.
func (r *AlunoRepository) Save(ctx context.Context, a *model.Aluno) (*model.Aluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromAluno(*a)
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO aluno (name, born_date, class_shift) VALUES ($1, $2, $3) RETURNING id`,
		row.Name, row.BornDate, row.ClassShift)
	if err != nil {
		return nil, sqlerr.Wrap(alunoEntity, "save", err)
	}

	a.ID = id
	return a, nil
}

func (r *AlunoRepository) GetByID(ctx context.Context, id int64) (*model.Aluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := queryOne[alunoRow](ctx, r.db,
		`SELECT `+alunoColumns+` FROM aluno WHERE id = $1`, id)
	if err != nil {
		return nil, sqlerr.Wrap(alunoEntity, "get_by_id", err)
	}

	a := row.toModel()
	return &a, nil
}

// GetByName returns every student with exactly this name, possibly none.
func (r *AlunoRepository) GetByName(ctx context.Context, name string) ([]model.Aluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[alunoRow](ctx, r.db,
		`SELECT `+alunoColumns+` FROM aluno WHERE name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, sqlerr.Wrap(alunoEntity, "get_by_name", err)
	}

	return toModels[model.Aluno](rows), nil
}

func (r *AlunoRepository) Update(ctx context.Context, a *model.Aluno) (*model.Aluno, error) {
	if a == nil || a.ID == 0 {
		return nil, sqlerr.MissingID(alunoEntity, "update")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromAluno(*a)
	err := execAffecting(ctx, r.db, alunoEntity, "update",
		`UPDATE aluno SET name = $1, born_date = $2, class_shift = $3 WHERE id = $4`,
		row.Name, row.BornDate, row.ClassShift, a.ID)
	if err != nil {
		return nil, sqlerr.Wrap(alunoEntity, "update", err)
	}

	return a, nil
}

// Delete removes the student and its guardian links in one transaction.
// Attendance records are not removed; a remaining one makes Delete fail.
func (r *AlunoRepository) Delete(ctx context.Context, a *model.Aluno) error {
	if a == nil || a.ID == 0 {
		return sqlerr.MissingID(alunoEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM responsavel_aluno WHERE aluno_id = $1`, a.ID); err != nil {
			return err
		}
		return execAffecting(ctx, tx, alunoEntity, "delete", `DELETE FROM aluno WHERE id = $1`, a.ID)
	})
	return sqlerr.Wrap(alunoEntity, "delete", err)
}

// LinkResponsavel associates a guardian with a student. Linking twice is a no-op.
func (r *AlunoRepository) LinkResponsavel(ctx context.Context, alunoID, responsavelID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(ctx,
		`INSERT INTO responsavel_aluno (responsavel_id, aluno_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		responsavelID, alunoID)
	return sqlerr.Wrap(alunoLinkEntity, "link", err)
}

func (r *AlunoRepository) UnlinkResponsavel(ctx context.Context, alunoID, responsavelID int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := execAffecting(ctx, r.db, alunoLinkEntity, "unlink",
		`DELETE FROM responsavel_aluno WHERE responsavel_id = $1 AND aluno_id = $2`,
		responsavelID, alunoID)
	return sqlerr.Wrap(alunoLinkEntity, "unlink", err)
}

// ListResponsaveis returns the guardians linked to a student, ordered by name.
func (r *AlunoRepository) ListResponsaveis(ctx context.Context, alunoID int64) ([]model.ResponsavelPorAluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[responsavelRow](ctx, r.db,
		`SELECT `+responsavelColumnsJoin+`
		FROM responsavel_por_aluno r
		JOIN responsavel_aluno ra ON ra.responsavel_id = r.id
		WHERE ra.aluno_id = $1
		ORDER BY r.name`, alunoID)
	if err != nil {
		return nil, sqlerr.Wrap(alunoLinkEntity, "list_responsaveis", err)
	}

	return toModels[model.ResponsavelPorAluno](rows), nil
}
