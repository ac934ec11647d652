package squill

import (
	"context"
	"database/sql"
	"time"
)

// DB is a database/sql abstraction that is satisfied by *sql.DB, *sql.Conn
// and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Executor runs compiled statements against a DB, binding each statement's
// Values positionally. It does not decode result sets; rows are handed back
// as *sql.Rows.
type Executor struct {
	db      DB
	builder QueryBuilder
	logger  QueryLogger
}

// NewExecutor creates an Executor for the given DB and dialect builder.
func NewExecutor(db DB, builder QueryBuilder) *Executor {
	return &Executor{db: db, builder: builder}
}

// WithLogger returns a copy of the executor that logs every query.
func (e *Executor) WithLogger(logger QueryLogger) *Executor {
	out := *e
	out.logger = logger
	return &out
}

// Builder returns the executor's dialect builder.
func (e *Executor) Builder() QueryBuilder { return e.builder }

// Exec compiles and runs a statement that returns no rows.
func (e *Executor) Exec(ctx context.Context, statement Statement) (sql.Result, error) {
	query, values := statement.BuildAny(e.builder)
	args := values.Args()
	start := time.Now()
	result, err := e.db.ExecContext(ctx, query, args...)
	e.log(ctx, query, args, err, result, start)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Query compiles and runs a statement that returns rows. The caller owns the
// returned rows and must close them.
func (e *Executor) Query(ctx context.Context, statement Statement) (*sql.Rows, error) {
	query, values := statement.BuildAny(e.builder)
	args := values.Args()
	start := time.Now()
	rows, err := e.db.QueryContext(ctx, query, args...)
	e.log(ctx, query, args, err, nil, start)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *Executor) log(ctx context.Context, query string, args []any, err error, result sql.Result, start time.Time) {
	if e.logger == nil {
		return
	}
	stats := QueryStats{
		Dialect:   builderDialect(e.builder),
		Query:     query,
		Args:      args,
		Err:       err,
		StartedAt: start,
		TimeTaken: time.Since(start),
	}
	if result != nil {
		if n, err := result.RowsAffected(); err == nil {
			stats.RowsAffected = sql.NullInt64{Int64: n, Valid: true}
		}
		if id, err := result.LastInsertId(); err == nil {
			stats.LastInsertId = sql.NullInt64{Int64: id, Valid: true}
		}
	}
	e.logger.LogQuery(ctx, stats)
}
