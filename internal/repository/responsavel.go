package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

const (
	responsavelEntity  = "responsavel_por_aluno"
	responsavelColumns = "id, name, relationship, identity, cpf, born_date, civil_status, " +
		"street_name, street_number, neighborhood, housing_additional_info, cep, phone, landline, email, observation"
	responsavelColumnsJoin = "r.id, r.name, r.relationship, r.identity, r.cpf, r.born_date, r.civil_status, " +
		"r.street_name, r.street_number, r.neighborhood, r.housing_additional_info, r.cep, r.phone, r.landline, r.email, r.observation"
)

// ResponsavelRepository persists guardians.
type ResponsavelRepository struct {
	store
}

func NewResponsavelRepository(db DBTX, queryTimeout time.Duration) *ResponsavelRepository {
	return &ResponsavelRepository{store: store{db: db, timeout: queryTimeout}}
}

func (r *ResponsavelRepository) Save(ctx context.Context, resp *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO responsavel_por_aluno (
			name, relationship, identity, cpf, born_date, civil_status,
			street_name, street_number, neighborhood, housing_additional_info,
			cep, phone, landline, email, observation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		fromResponsavel(*resp).args()...)
	if err != nil {
		return nil, sqlerr.Wrap(responsavelEntity, "save", err)
	}

	resp.ID = id
	return resp, nil
}

func (r *ResponsavelRepository) GetByID(ctx context.Context, id int64) (*model.ResponsavelPorAluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := queryOne[responsavelRow](ctx, r.db,
		`SELECT `+responsavelColumns+` FROM responsavel_por_aluno WHERE id = $1`, id)
	if err != nil {
		return nil, sqlerr.Wrap(responsavelEntity, "get_by_id", err)
	}

	resp := row.toModel()
	return &resp, nil
}

func (r *ResponsavelRepository) Update(ctx context.Context, resp *model.ResponsavelPorAluno) (*model.ResponsavelPorAluno, error) {
	if resp == nil || resp.ID == 0 {
		return nil, sqlerr.MissingID(responsavelEntity, "update")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	args := append(fromResponsavel(*resp).args(), resp.ID)
	err := execAffecting(ctx, r.db, responsavelEntity, "update",
		`UPDATE responsavel_por_aluno SET
			name = $1, relationship = $2, identity = $3, cpf = $4, born_date = $5, civil_status = $6,
			street_name = $7, street_number = $8, neighborhood = $9, housing_additional_info = $10,
			cep = $11, phone = $12, landline = $13, email = $14, observation = $15
		WHERE id = $16`,
		args...)
	if err != nil {
		return nil, sqlerr.Wrap(responsavelEntity, "update", err)
	}

	return resp, nil
}

// Delete removes the guardian and its student links in one transaction.
func (r *ResponsavelRepository) Delete(ctx context.Context, resp *model.ResponsavelPorAluno) error {
	if resp == nil || resp.ID == 0 {
		return sqlerr.MissingID(responsavelEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM responsavel_aluno WHERE responsavel_id = $1`, resp.ID); err != nil {
			return err
		}
		return execAffecting(ctx, tx, responsavelEntity, "delete", `DELETE FROM responsavel_por_aluno WHERE id = $1`, resp.ID)
	})
	return sqlerr.Wrap(responsavelEntity, "delete", err)
}

// ListAlunos returns the students linked to a guardian, ordered by name.
func (r *ResponsavelRepository) ListAlunos(ctx context.Context, responsavelID int64) ([]model.Aluno, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[alunoRow](ctx, r.db,
		`SELECT `+alunoColumnsJoin+`
		FROM aluno a
		JOIN responsavel_aluno ra ON ra.aluno_id = a.id
		WHERE ra.responsavel_id = $1
		ORDER BY a.name`, responsavelID)
	if err != nil {
		return nil, sqlerr.Wrap(alunoLinkEntity, "list_alunos", err)
	}

	return toModels[model.Aluno](rows), nil
}
