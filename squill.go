package squill

import (
	"bytes"
	"sync"
)

var bufpool = &sync.Pool{
	New: func() any { return &bytes.Buffer{} },
}

// Dialects supported.
const (
	DialectSQLite    = "sqlite"
	DialectPostgres  = "postgres"
	DialectMySQL     = "mysql"
	DialectCockroach = "cockroachdb"
)

// QueryBuilder is a dialect tag. It holds no state; building a statement is a
// pure function of (builder, statement) -> (SQL, Values).
type QueryBuilder interface {
	Dialect() string
}

// PostgresQueryBuilder renders statements for PostgreSQL: double-quoted
// identifiers, $1-style placeholders.
type PostgresQueryBuilder struct{}

// NewPostgresQueryBuilder creates a new PostgresQueryBuilder.
func NewPostgresQueryBuilder() PostgresQueryBuilder { return PostgresQueryBuilder{} }

// Dialect implements the QueryBuilder interface.
func (PostgresQueryBuilder) Dialect() string { return DialectPostgres }

// MySQLQueryBuilder renders statements for MySQL: backtick-quoted
// identifiers, ? placeholders, 'user'@'%' account syntax.
type MySQLQueryBuilder struct{}

// NewMySQLQueryBuilder creates a new MySQLQueryBuilder.
func NewMySQLQueryBuilder() MySQLQueryBuilder { return MySQLQueryBuilder{} }

// Dialect implements the QueryBuilder interface.
func (MySQLQueryBuilder) Dialect() string { return DialectMySQL }

// SQLiteQueryBuilder renders statements for SQLite: double-quoted
// identifiers, ? placeholders. SQLite has no materialized views, roles or
// procedures; building those statements panics.
type SQLiteQueryBuilder struct{}

// NewSQLiteQueryBuilder creates a new SQLiteQueryBuilder.
func NewSQLiteQueryBuilder() SQLiteQueryBuilder { return SQLiteQueryBuilder{} }

// Dialect implements the QueryBuilder interface.
func (SQLiteQueryBuilder) Dialect() string { return DialectSQLite }

// CockroachDBQueryBuilder renders statements for CockroachDB. CockroachDB
// speaks the Postgres wire protocol and follows Postgres quoting and
// placeholder conventions.
type CockroachDBQueryBuilder struct{}

// NewCockroachDBQueryBuilder creates a new CockroachDBQueryBuilder.
func NewCockroachDBQueryBuilder() CockroachDBQueryBuilder { return CockroachDBQueryBuilder{} }

// Dialect implements the QueryBuilder interface.
func (CockroachDBQueryBuilder) Dialect() string { return DialectCockroach }

// builderDialect resolves a type-erased QueryBuilder to its dialect. The
// concrete types are tried in a fixed order; anything else is a programmer
// error (a new dialect was added without being wired in here) and panics.
func builderDialect(builder QueryBuilder) string {
	switch builder.(type) {
	case PostgresQueryBuilder, *PostgresQueryBuilder:
		return DialectPostgres
	case MySQLQueryBuilder, *MySQLQueryBuilder:
		return DialectMySQL
	case SQLiteQueryBuilder, *SQLiteQueryBuilder:
		return DialectSQLite
	case CockroachDBQueryBuilder, *CockroachDBQueryBuilder:
		return DialectCockroach
	default:
		panic("Unsupported query builder type")
	}
}

// dialectLabel returns the human-readable dialect name used in panic
// messages.
func dialectLabel(dialect string) string {
	switch dialect {
	case DialectPostgres:
		return "Postgres"
	case DialectMySQL:
		return "MySQL"
	case DialectSQLite:
		return "SQLite"
	case DialectCockroach:
		return "CockroachDB"
	default:
		return dialect
	}
}

// Statement is any statement that can be compiled against a dialect builder.
// All statement types in this package implement it.
type Statement interface {
	BuildAny(builder QueryBuilder) (string, Values)
}
