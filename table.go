package squill

import "strconv"

type columnTypeKind int

const (
	colBool columnTypeKind = iota
	colTinyInt
	colSmallInt
	colInt
	colBigInt
	colFloat
	colDouble
	colVarchar
	colText
	colBytes
	colTimestamp
	colUUID
)

// ColumnType is a dialect-independent column type, mapped to concrete SQL
// type names at render time.
type ColumnType struct {
	kind columnTypeKind
	size int
}

// ColBool is a boolean column type.
func ColBool() ColumnType { return ColumnType{kind: colBool} }

// ColTinyInt is an 8-bit integer column type.
func ColTinyInt() ColumnType { return ColumnType{kind: colTinyInt} }

// ColSmallInt is a 16-bit integer column type.
func ColSmallInt() ColumnType { return ColumnType{kind: colSmallInt} }

// ColInt is a 32-bit integer column type.
func ColInt() ColumnType { return ColumnType{kind: colInt} }

// ColBigInt is a 64-bit integer column type.
func ColBigInt() ColumnType { return ColumnType{kind: colBigInt} }

// ColFloat is a single-precision float column type.
func ColFloat() ColumnType { return ColumnType{kind: colFloat} }

// ColDouble is a double-precision float column type.
func ColDouble() ColumnType { return ColumnType{kind: colDouble} }

// ColVarchar is a bounded string column type.
func ColVarchar(size int) ColumnType { return ColumnType{kind: colVarchar, size: size} }

// ColText is an unbounded string column type.
func ColText() ColumnType { return ColumnType{kind: colText} }

// ColBytes is a binary column type.
func ColBytes() ColumnType { return ColumnType{kind: colBytes} }

// ColTimestamp is a date-time column type.
func ColTimestamp() ColumnType { return ColumnType{kind: colTimestamp} }

// ColUUID is a UUID column type.
func ColUUID() ColumnType { return ColumnType{kind: colUUID} }

func (ct ColumnType) sql(dialect string) string {
	switch ct.kind {
	case colBool:
		return "BOOLEAN"
	case colTinyInt:
		switch dialect {
		case DialectMySQL:
			return "TINYINT"
		case DialectSQLite:
			return "INTEGER"
		default:
			return "SMALLINT"
		}
	case colSmallInt:
		if dialect == DialectSQLite {
			return "INTEGER"
		}
		return "SMALLINT"
	case colInt:
		if dialect == DialectMySQL {
			return "INT"
		}
		return "INTEGER"
	case colBigInt:
		if dialect == DialectSQLite {
			return "INTEGER"
		}
		return "BIGINT"
	case colFloat:
		if dialect == DialectMySQL {
			return "FLOAT"
		}
		return "REAL"
	case colDouble:
		switch dialect {
		case DialectMySQL:
			return "DOUBLE"
		case DialectSQLite:
			return "REAL"
		default:
			return "DOUBLE PRECISION"
		}
	case colVarchar:
		if dialect == DialectSQLite {
			return "TEXT"
		}
		return "VARCHAR(" + strconv.Itoa(ct.size) + ")"
	case colText:
		return "TEXT"
	case colBytes:
		if dialect == DialectPostgres || dialect == DialectCockroach {
			return "BYTEA"
		}
		return "BLOB"
	case colTimestamp:
		if dialect == DialectMySQL {
			return "DATETIME"
		}
		return "TIMESTAMP"
	case colUUID:
		switch dialect {
		case DialectMySQL:
			return "CHAR(36)"
		case DialectSQLite:
			return "TEXT"
		default:
			return "UUID"
		}
	default:
		return "TEXT"
	}
}

// ColumnDef is one column in a CREATE TABLE statement.
type ColumnDef struct {
	name          Iden
	typ           ColumnType
	notNull       bool
	primaryKey    bool
	autoIncrement bool
	unique        bool
	defaultExpr   string
}

// Column creates a column definition.
func Column(name string, typ ColumnType) ColumnDef {
	return ColumnDef{name: Iden(name), typ: typ}
}

// NotNull marks the column NOT NULL.
func (c ColumnDef) NotNull() ColumnDef { c.notNull = true; return c }

// PrimaryKey marks the column as the primary key.
func (c ColumnDef) PrimaryKey() ColumnDef { c.primaryKey = true; return c }

// AutoIncrement marks the column auto-incrementing. The rendered form is
// dialect-specific (AUTO_INCREMENT, SERIAL/BIGSERIAL, AUTOINCREMENT).
func (c ColumnDef) AutoIncrement() ColumnDef { c.autoIncrement = true; return c }

// Unique marks the column UNIQUE.
func (c ColumnDef) Unique() ColumnDef { c.unique = true; return c }

// Default sets a raw default expression, written verbatim.
func (c ColumnDef) Default(expr string) ColumnDef { c.defaultExpr = expr; return c }

func (c ColumnDef) writeTo(w *sqlWriter) {
	w.ident(string(c.name))
	w.space()
	if c.autoIncrement {
		switch w.dialect {
		case DialectPostgres, DialectCockroach:
			if c.typ.kind == colBigInt {
				w.write("BIGSERIAL")
			} else {
				w.write("SERIAL")
			}
		case DialectSQLite:
			// SQLite ties AUTOINCREMENT to INTEGER PRIMARY KEY.
			w.write("INTEGER PRIMARY KEY AUTOINCREMENT")
			if c.notNull {
				w.write(" NOT NULL")
			}
			return
		default:
			w.write(c.typ.sql(w.dialect))
		}
	} else {
		w.write(c.typ.sql(w.dialect))
	}
	if c.primaryKey {
		w.write(" PRIMARY KEY")
	}
	if c.autoIncrement && w.dialect == DialectMySQL {
		w.write(" AUTO_INCREMENT")
	}
	if c.notNull {
		w.write(" NOT NULL")
	}
	if c.unique {
		w.write(" UNIQUE")
	}
	if c.defaultExpr != "" {
		w.write(" DEFAULT " + c.defaultExpr)
	}
}

// CreateTableStatement is a buildable CREATE TABLE.
type CreateTableStatement struct {
	table       TableRef
	ifNotExists bool
	temporary   bool
	columns     []ColumnDef
	primaryKey  []Iden
}

// NewCreateTableStatement creates an empty CREATE TABLE statement.
func NewCreateTableStatement() *CreateTableStatement { return &CreateTableStatement{} }

// Table sets the table to create.
func (s *CreateTableStatement) Table(table TableRef) *CreateTableStatement {
	s.table = table
	return s
}

// Name sets the table to create by name.
func (s *CreateTableStatement) Name(name string) *CreateTableStatement {
	return s.Table(Table(name))
}

// IfNotExists adds IF NOT EXISTS.
func (s *CreateTableStatement) IfNotExists() *CreateTableStatement {
	s.ifNotExists = true
	return s
}

// Temporary marks the table TEMPORARY.
func (s *CreateTableStatement) Temporary() *CreateTableStatement {
	s.temporary = true
	return s
}

// Column appends a column definition.
func (s *CreateTableStatement) Column(col ColumnDef) *CreateTableStatement {
	s.columns = append(s.columns, col)
	return s
}

// PrimaryKey sets a table-level composite primary key.
func (s *CreateTableStatement) PrimaryKey(columns ...string) *CreateTableStatement {
	s.primaryKey = s.primaryKey[:0]
	for _, name := range columns {
		s.primaryKey = append(s.primaryKey, Iden(name))
	}
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *CreateTableStatement) Take() CreateTableStatement {
	out := *s
	*s = CreateTableStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *CreateTableStatement) BuildAny(builder QueryBuilder) (string, Values) {
	w := newSQLWriter(builderDialect(builder))
	w.keyword("CREATE")
	if s.temporary {
		w.keyword("TEMPORARY")
	}
	w.keyword("TABLE")
	if s.ifNotExists {
		w.keyword("IF NOT EXISTS")
	}
	w.space()
	s.table.writeTo(w)
	w.write(" (")
	for i, col := range s.columns {
		if i > 0 {
			w.write(", ")
		}
		col.writeTo(w)
	}
	if len(s.primaryKey) > 0 {
		w.write(", PRIMARY KEY (")
		w.idents(s.primaryKey)
		w.write(")")
	}
	w.write(")")
	return w.finish()
}

// DropTableStatement is a buildable DROP TABLE.
type DropTableStatement struct {
	tables   []TableRef
	ifExists bool
	cascade  bool
	restrict bool
}

// NewDropTableStatement creates an empty DROP TABLE statement.
func NewDropTableStatement() *DropTableStatement { return &DropTableStatement{} }

// Table appends a table to drop.
func (s *DropTableStatement) Table(table TableRef) *DropTableStatement {
	s.tables = append(s.tables, table)
	return s
}

// Name appends a table to drop by name.
func (s *DropTableStatement) Name(name string) *DropTableStatement {
	return s.Table(Table(name))
}

// IfExists adds IF EXISTS.
func (s *DropTableStatement) IfExists() *DropTableStatement {
	s.ifExists = true
	return s
}

// Cascade adds CASCADE. Panics at build time on SQLite.
func (s *DropTableStatement) Cascade() *DropTableStatement {
	s.cascade = true
	s.restrict = false
	return s
}

// Restrict adds RESTRICT. Panics at build time on SQLite.
func (s *DropTableStatement) Restrict() *DropTableStatement {
	s.restrict = true
	s.cascade = false
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *DropTableStatement) Take() DropTableStatement {
	out := *s
	*s = DropTableStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *DropTableStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if dialect == DialectSQLite && (s.cascade || s.restrict) {
		panic("SQLite does not support CASCADE or RESTRICT for DROP TABLE")
	}
	w := newSQLWriter(dialect)
	w.keyword("DROP TABLE")
	if s.ifExists {
		w.keyword("IF EXISTS")
	}
	w.space()
	for i, table := range s.tables {
		if i > 0 {
			w.write(", ")
		}
		table.writeTo(w)
	}
	if s.cascade {
		w.keyword("CASCADE")
	}
	if s.restrict {
		w.keyword("RESTRICT")
	}
	return w.finish()
}

// TruncateTableStatement is a buildable TRUNCATE TABLE. SQLite has no
// TRUNCATE; it degrades to DELETE FROM, and panics if Postgres-only options
// were requested.
type TruncateTableStatement struct {
	table           TableRef
	restartIdentity bool
	cascade         bool
}

// NewTruncateTableStatement creates an empty TRUNCATE TABLE statement.
func NewTruncateTableStatement() *TruncateTableStatement { return &TruncateTableStatement{} }

// Table sets the table to truncate.
func (s *TruncateTableStatement) Table(table TableRef) *TruncateTableStatement {
	s.table = table
	return s
}

// Name sets the table to truncate by name.
func (s *TruncateTableStatement) Name(name string) *TruncateTableStatement {
	return s.Table(Table(name))
}

// RestartIdentity adds RESTART IDENTITY (Postgres/CockroachDB).
func (s *TruncateTableStatement) RestartIdentity() *TruncateTableStatement {
	s.restartIdentity = true
	return s
}

// Cascade adds CASCADE (Postgres/CockroachDB).
func (s *TruncateTableStatement) Cascade() *TruncateTableStatement {
	s.cascade = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *TruncateTableStatement) Take() TruncateTableStatement {
	out := *s
	*s = TruncateTableStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *TruncateTableStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if s.restartIdentity || s.cascade {
		switch dialect {
		case DialectSQLite:
			panic("SQLite does not support TRUNCATE options")
		case DialectMySQL:
			panic("MySQL does not support TRUNCATE options")
		}
	}
	w := newSQLWriter(dialect)
	switch dialect {
	case DialectSQLite:
		w.keyword("DELETE FROM")
		w.space()
		s.table.writeTo(w)
	case DialectMySQL:
		w.keyword("TRUNCATE TABLE")
		w.space()
		s.table.writeTo(w)
	default:
		w.keyword("TRUNCATE TABLE")
		w.space()
		s.table.writeTo(w)
		if s.restartIdentity {
			w.keyword("RESTART IDENTITY")
		}
		if s.cascade {
			w.keyword("CASCADE")
		}
	}
	return w.finish()
}
