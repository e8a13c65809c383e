// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every method returns one of three outcomes:
//   - the value and a nil error
//   - an error matching sqlerr.ErrNotFound when the record does not exist
//   - any other error (a *sqlerr.OpError) when the store failed
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bhzconnection/escola/internal/sqlerr"
)

// DBTX is satisfied by *pgxpool.Pool and by pgxmock pools.
// Repositories share it and never close it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Alunos         *AlunoRepository
	Responsaveis   *ResponsavelRepository
	Professores    *ProfessorRepository
	Presencas      *PresencaRepository
	PeriodosLetivo *PeriodoLetivoRepository
	DiasSemAula    *DiaSemAulaRepository
}

// NewRepositories builds every repository over db. queryTimeout bounds each
// call; zero disables the bound.
func NewRepositories(db DBTX, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		Alunos:         NewAlunoRepository(db, queryTimeout),
		Responsaveis:   NewResponsavelRepository(db, queryTimeout),
		Professores:    NewProfessorRepository(db, queryTimeout),
		Presencas:      NewPresencaRepository(db, queryTimeout),
		PeriodosLetivo: NewPeriodoLetivoRepository(db, queryTimeout),
		DiasSemAula:    NewDiaSemAulaRepository(db, queryTimeout),
	}
}

// store carries the shared connection handle and query timeout.
type store struct {
	db      DBTX
	timeout time.Duration
}

func (s store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// inTx runs fn in a transaction, committing when fn succeeds.
func (s store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

// insertReturningID runs an INSERT ... RETURNING id.
func insertReturningID(ctx context.Context, db DBTX, sql string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// execAffecting runs sql and reports sqlerr.ErrNotFound when no row changed.
func execAffecting(ctx context.Context, db DBTX, entity, op, sql string, args ...any) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound(entity, op)
	}
	return nil
}

// queryOne scans exactly the first row into R; no rows yields pgx.ErrNoRows.
func queryOne[R any](ctx context.Context, db DBTX, sql string, args ...any) (R, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		var zero R
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[R])
}

// queryAll scans every row into R.
func queryAll[R any](ctx context.Context, db DBTX, sql string, args ...any) ([]R, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[R])
}

func notFound(entity, op string) error {
	return sqlerr.NotFound(entity, op)
}
