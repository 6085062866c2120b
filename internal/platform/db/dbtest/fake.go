// Package dbtest provides in-memory stand-ins for pooled connections.
package dbtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/odyssey-erp/userdesk/internal/platform/db"
)

// Rows is a canned pgx.Rows result.
type Rows struct {
	Fields  []string
	Data    [][]any
	Failure error
	Closed  bool
	pos     int
}

// NewRows builds Rows with the given column names and row values.
func NewRows(fields []string, data ...[]any) *Rows {
	return &Rows{Fields: fields, Data: data}
}

func (r *Rows) Close()                        { r.Closed = true }
func (r *Rows) Err() error                    { return r.Failure }
func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *Rows) RawValues() [][]byte           { return nil }
func (r *Rows) Conn() *pgx.Conn               { return nil }

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.Fields))
	for i, name := range r.Fields {
		out[i] = pgconn.FieldDescription{Name: name}
	}
	return out
}

func (r *Rows) Next() bool {
	if r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Values() ([]any, error) {
	return r.Data[r.pos-1], nil
}

func (r *Rows) Scan(dest ...any) error {
	row := r.Data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("dbtest: scan %d targets into %d values", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *string:
			*p = row[i].(string)
		case *any:
			*p = row[i]
		default:
			return fmt.Errorf("dbtest: unsupported scan target %T", d)
		}
	}
	return nil
}

// Call records one statement sent through a Conn.
type Call struct {
	SQL  string
	Args []any
}

// Conn answers every Query with Rows or Err.
type Conn struct {
	Rows     pgx.Rows
	Err      error
	Calls    []Call
	Released int
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.Calls = append(c.Calls, Call{SQL: sql, Args: args})
	if c.Err != nil {
		return nil, c.Err
	}
	if c.Rows == nil {
		return NewRows(nil), nil
	}
	return c.Rows, nil
}

func (c *Conn) Release() { c.Released++ }

// Acquirer hands out Conn, or fails with Err.
type Acquirer struct {
	mu       sync.Mutex
	Conn     *Conn
	Err      error
	Acquired int
}

// NewAcquirer returns an Acquirer whose connection yields rows.
func NewAcquirer(rows pgx.Rows) *Acquirer {
	return &Acquirer{Conn: &Conn{Rows: rows}}
}

func (a *Acquirer) Acquire(ctx context.Context) (db.Conn, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Acquired++
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Conn, nil
}

// Balanced reports whether every acquired connection was released.
func (a *Acquirer) Balanced() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return true
	}
	return a.Conn.Released == a.Acquired
}
