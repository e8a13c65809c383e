// Package database establishes the PostgreSQL connection pool.
//
// It handles:
//   - trying each configured candidate host until one answers a ping
//   - creating a pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog)
//   - optional New Relic instrumentation (nrpgx5)
//   - creating the schema when it does not exist yet
package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"

	"github.com/bhzconnection/escola/internal/config"
	loggerConfig "github.com/bhzconnection/escola/internal/logger"
)

// Database wraps the pgx connection pool of the selected host.
type Database struct {
	Pool *pgxpool.Pool
	Host string
	log  *zerolog.Logger
}

// multiTracer chains several pgx query tracers; pgx accepts only one.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// New connects to the first candidate in cfg.Database.Hosts that answers a ping.
//
// A candidate is accepted only after a successful round trip. Candidates that
// fail are logged and closed. When every candidate fails the returned error
// lists each attempt.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var attempts []error

	for _, host := range cfg.Database.Hosts {
		pool, err := connect(ctx, cfg, host, logger, loggerService)
		if err != nil {
			logger.Warn().Err(err).Str("host", host).Msg("database candidate unavailable")
			attempts = append(attempts, fmt.Errorf("%s: %w", host, err))
			continue
		}

		logger.Info().Str("host", host).Msg("connected to the database")
		return &Database{Pool: pool, Host: host, log: logger}, nil
	}

	if len(attempts) == 0 {
		return nil, errors.New("no database hosts configured")
	}
	return nil, fmt.Errorf("could not connect to any database host: %w", errors.Join(attempts...))
}

func connect(ctx context.Context, cfg *config.Config, host string, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*pgxpool.Pool, error) {
	pgxPoolConfig, err := poolConfig(cfg, host)
	if err != nil {
		return nil, err
	}

	pgxPoolConfig.ConnConfig.Tracer = newTracer(cfg, logger, loggerService)

	pool, err := pgxpool.NewWithConfig(ctx, pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// buildDSN assembles a postgres URL for host. The password is escaped and
// IPv6 hosts are bracketed.
func buildDSN(db config.DatabaseConfig, host string) string {
	hostPort := net.JoinHostPort(host, strconv.Itoa(db.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		hostPort,
		db.Name,
		db.SSLMode,
	)
}

func poolConfig(cfg *config.Config, host string) (*pgxpool.Config, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(buildDSN(cfg.Database, host))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(min(cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns))
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second
	pgxPoolConfig.ConnConfig.ConnectTimeout = cfg.Database.ConnectTimeout

	return pgxPoolConfig, nil
}

// newTracer returns the New Relic tracer when APM is on and, in the local
// environment, the SQL tracelogger. Both are chained when present.
func newTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []any

	if loggerService != nil && loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// Very noisy, local only.
	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0].(pgx.QueryTracer)
	default:
		return &multiTracer{tracers: tracers}
	}
}

// Close closes the connection pool.
func (db *Database) Close() error {
	db.log.Info().Str("host", db.Host).Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
