package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStore is returned for every failure reaching the database. The driver
// cause is logged, never returned.
var ErrStore = errors.New("store failure")

// Query outcomes reported to a QueryObserver.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Conn is a connection checked out of a pool.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Release()
}

// Acquirer hands out pooled connections.
type Acquirer interface {
	Acquire(ctx context.Context) (Conn, error)
}

// QueryObserver is notified once per executed statement.
type QueryObserver interface {
	ObserveQuery(outcome string)
}

// PoolAcquirer adapts a pgxpool.Pool to Acquirer.
type PoolAcquirer struct {
	Pool *pgxpool.Pool
}

// Acquire checks out a connection from the pool.
func (p PoolAcquirer) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Executor runs parameterized statements on pooled connections.
type Executor struct {
	acquirer Acquirer
	logger   *slog.Logger
	observer QueryObserver
}

// NewExecutor builds an Executor. logger and observer may be nil.
func NewExecutor(acquirer Acquirer, logger *slog.Logger, observer QueryObserver) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{acquirer: acquirer, logger: logger, observer: observer}
}

// Query executes sql with args bound to its $n placeholders and collects the
// result rows into T by `db` struct tags. Statements without a result set
// return an empty slice. The connection is released on every path.
func Query[T any](ctx context.Context, e *Executor, sql string, args ...any) ([]T, error) {
	var out []T
	err := e.withConn(ctx, sql, func(conn Conn) error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (e *Executor) withConn(ctx context.Context, sql string, fn func(Conn) error) error {
	conn, err := e.acquirer.Acquire(ctx)
	if err != nil {
		return e.fail("acquire", sql, err)
	}
	defer conn.Release()

	if err := fn(conn); err != nil {
		return e.fail("query", sql, err)
	}
	e.observe(OutcomeOK)
	return nil
}

func (e *Executor) fail(stage, sql string, cause error) error {
	attrs := []any{slog.String("stage", stage), slog.String("sql", sql), slog.Any("error", cause)}
	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		attrs = append(attrs, slog.String("sqlstate", pgErr.Code))
	}
	e.logger.Error("store query failed", attrs...)
	e.observe(OutcomeError)
	return fmt.Errorf("platform/db: %s: %w", stage, ErrStore)
}

func (e *Executor) observe(outcome string) {
	if e.observer != nil {
		e.observer.ObserveQuery(outcome)
	}
}
