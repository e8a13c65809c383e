package repository

import (
	"context"
	"time"

	"github.com/bhzconnection/escola/internal/lib/password"
	"github.com/bhzconnection/escola/internal/model"
	"github.com/bhzconnection/escola/internal/sqlerr"
)

const (
	professorEntity  = "professor"
	professorColumns = "id, name, email, password_hash"
)

// LoginOutcome is the result of checking a teacher's credentials.
type LoginOutcome int

const (
	LoginUnknownUser LoginOutcome = iota
	LoginMismatch
	LoginOK
)

func (o LoginOutcome) String() string {
	switch o {
	case LoginOK:
		return "ok"
	case LoginMismatch:
		return "mismatch"
	default:
		return "unknown_user"
	}
}

// ProfessorRepository persists teachers. Email is unique; a duplicate surfaces
// as a unique violation from Save.
type ProfessorRepository struct {
	store
}

func NewProfessorRepository(db DBTX, queryTimeout time.Duration) *ProfessorRepository {
	return &ProfessorRepository{store: store{db: db, timeout: queryTimeout}}
}

func (r *ProfessorRepository) Save(ctx context.Context, p *model.Professor) (*model.Professor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromProfessor(*p)
	id, err := insertReturningID(ctx, r.db,
		`INSERT INTO professor (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		row.Name, row.Email, row.PasswordHash)
	if err != nil {
		return nil, sqlerr.Wrap(professorEntity, "save", err)
	}

	p.ID = id
	return p, nil
}

func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*model.Professor, error) {
	return r.getOne(ctx, "get_by_id", `SELECT `+professorColumns+` FROM professor WHERE id = $1`, id)
}

func (r *ProfessorRepository) GetByEmail(ctx context.Context, email string) (*model.Professor, error) {
	return r.getOne(ctx, "get_by_email", `SELECT `+professorColumns+` FROM professor WHERE email = $1`, email)
}

func (r *ProfessorRepository) getOne(ctx context.Context, op, sql string, arg any) (*model.Professor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := queryOne[professorRow](ctx, r.db, sql, arg)
	if err != nil {
		return nil, sqlerr.Wrap(professorEntity, op, err)
	}

	p := row.toModel()
	return &p, nil
}

// GetByName returns every teacher with exactly this name, possibly none.
func (r *ProfessorRepository) GetByName(ctx context.Context, name string) ([]model.Professor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := queryAll[professorRow](ctx, r.db,
		`SELECT `+professorColumns+` FROM professor WHERE name = $1 ORDER BY id`, name)
	if err != nil {
		return nil, sqlerr.Wrap(professorEntity, "get_by_name", err)
	}

	return toModels[model.Professor](rows), nil
}

func (r *ProfessorRepository) Update(ctx context.Context, p *model.Professor) (*model.Professor, error) {
	if p == nil || p.ID == 0 {
		return nil, sqlerr.MissingID(professorEntity, "update")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := fromProfessor(*p)
	err := execAffecting(ctx, r.db, professorEntity, "update",
		`UPDATE professor SET name = $1, email = $2, password_hash = $3 WHERE id = $4`,
		row.Name, row.Email, row.PasswordHash, p.ID)
	if err != nil {
		return nil, sqlerr.Wrap(professorEntity, "update", err)
	}

	return p, nil
}

func (r *ProfessorRepository) Delete(ctx context.Context, p *model.Professor) error {
	if p == nil || p.ID == 0 {
		return sqlerr.MissingID(professorEntity, "delete")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := execAffecting(ctx, r.db, professorEntity, "delete", `DELETE FROM professor WHERE id = $1`, p.ID)
	return sqlerr.Wrap(professorEntity, "delete", err)
}

// Authenticate checks email and password against the stored bcrypt hash.
//
// The professor is returned only with LoginOK. An unknown email is
// LoginUnknownUser, not an error.
func (r *ProfessorRepository) Authenticate(ctx context.Context, email, plainPassword string) (*model.Professor, LoginOutcome, error) {
	p, err := r.GetByEmail(ctx, email)
	switch {
	case sqlerr.IsNotFound(err):
		return nil, LoginUnknownUser, nil
	case err != nil:
		return nil, LoginUnknownUser, sqlerr.Wrap(professorEntity, "authenticate", err)
	}

	ok, err := password.Compare(p.PasswordHash, plainPassword)
	if err != nil {
		return nil, LoginMismatch, sqlerr.Wrap(professorEntity, "authenticate", err)
	}
	if !ok {
		return nil, LoginMismatch, nil
	}

	return p, LoginOK, nil
}

// VerifyLogin reports whether the credentials match a teacher. Unknown email
// and wrong password are both false.
func (r *ProfessorRepository) VerifyLogin(ctx context.Context, email, plainPassword string) (bool, error) {
	_, outcome, err := r.Authenticate(ctx, email, plainPassword)
	if err != nil {
		return false, err
	}
	return outcome == LoginOK, nil
}
