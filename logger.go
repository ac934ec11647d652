package squill

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"
)

// QueryStats represents the statistics from running a query.
type QueryStats struct {
	// Dialect of the query.
	Dialect string

	// Query string.
	Query string

	// Args slice provided with the query string.
	Args []any

	// Err is the error from running the query.
	Err error

	// RowsAffected by running the query. Not valid for queries that return
	// rows.
	RowsAffected sql.NullInt64

	// LastInsertId of the query.
	LastInsertId sql.NullInt64

	// When the query started at.
	StartedAt time.Time

	// Time taken by the query.
	TimeTaken time.Duration
}

// QueryLogger receives the stats of every query an Executor runs.
type QueryLogger interface {
	LogQuery(ctx context.Context, stats QueryStats)
}

type zerologQueryLogger struct {
	logger zerolog.Logger
}

// NewQueryLogger returns a QueryLogger that writes structured events to the
// given zerolog logger. Successful queries log at debug level, failures at
// error level.
func NewQueryLogger(logger zerolog.Logger) QueryLogger {
	return &zerologQueryLogger{logger: logger}
}

// LogQuery implements the QueryLogger interface.
func (l *zerologQueryLogger) LogQuery(ctx context.Context, stats QueryStats) {
	select {
	case <-ctx.Done():
		return
	default:
	}
	var event *zerolog.Event
	if stats.Err != nil {
		event = l.logger.Error().Err(stats.Err)
	} else {
		event = l.logger.Debug()
	}
	event = event.
		Str("dialect", stats.Dialect).
		Str("query", stats.Query).
		Dur("time_taken", stats.TimeTaken)
	if len(stats.Args) > 0 {
		event = event.Interface("args", stats.Args)
	}
	if stats.RowsAffected.Valid {
		event = event.Int64("rows_affected", stats.RowsAffected.Int64)
	}
	if stats.LastInsertId.Valid {
		event = event.Int64("last_insert_id", stats.LastInsertId.Int64)
	}
	event.Msg("query")
}
