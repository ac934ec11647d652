package squill

// CreateIndexStatement is a buildable CREATE INDEX.
type CreateIndexStatement struct {
	name        Iden
	table       TableRef
	columns     []Iden
	unique      bool
	ifNotExists bool
}

// NewCreateIndexStatement creates an empty CREATE INDEX statement.
func NewCreateIndexStatement() *CreateIndexStatement { return &CreateIndexStatement{} }

// Name sets the index name.
func (s *CreateIndexStatement) Name(name string) *CreateIndexStatement {
	s.name = Iden(name)
	return s
}

// Table sets the indexed table.
func (s *CreateIndexStatement) Table(table TableRef) *CreateIndexStatement {
	s.table = table
	return s
}

// On sets the indexed table by name.
func (s *CreateIndexStatement) On(name string) *CreateIndexStatement {
	return s.Table(Table(name))
}

// Columns sets the indexed columns.
func (s *CreateIndexStatement) Columns(names ...string) *CreateIndexStatement {
	s.columns = s.columns[:0]
	for _, name := range names {
		s.columns = append(s.columns, Iden(name))
	}
	return s
}

// Unique marks the index UNIQUE.
func (s *CreateIndexStatement) Unique() *CreateIndexStatement {
	s.unique = true
	return s
}

// IfNotExists adds IF NOT EXISTS. MySQL does not support it and panics at
// build time.
func (s *CreateIndexStatement) IfNotExists() *CreateIndexStatement {
	s.ifNotExists = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *CreateIndexStatement) Take() CreateIndexStatement {
	out := *s
	*s = CreateIndexStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *CreateIndexStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if dialect == DialectMySQL && s.ifNotExists {
		panic("MySQL does not support IF NOT EXISTS for CREATE INDEX")
	}
	w := newSQLWriter(dialect)
	w.keyword("CREATE")
	if s.unique {
		w.keyword("UNIQUE")
	}
	w.keyword("INDEX")
	if s.ifNotExists {
		w.keyword("IF NOT EXISTS")
	}
	w.space()
	w.ident(string(s.name))
	w.keyword("ON")
	w.space()
	s.table.writeTo(w)
	w.write(" (")
	w.idents(s.columns)
	w.write(")")
	return w.finish()
}

// DropIndexStatement is a buildable DROP INDEX. MySQL requires the indexed
// table: `DROP INDEX name ON table`.
type DropIndexStatement struct {
	name     Iden
	table    TableRef
	ifExists bool
}

// NewDropIndexStatement creates an empty DROP INDEX statement.
func NewDropIndexStatement() *DropIndexStatement { return &DropIndexStatement{} }

// Name sets the index name.
func (s *DropIndexStatement) Name(name string) *DropIndexStatement {
	s.name = Iden(name)
	return s
}

// Table sets the indexed table, required on MySQL.
func (s *DropIndexStatement) Table(table TableRef) *DropIndexStatement {
	s.table = table
	return s
}

// On sets the indexed table by name.
func (s *DropIndexStatement) On(name string) *DropIndexStatement {
	return s.Table(Table(name))
}

// IfExists adds IF EXISTS. MySQL does not support it and panics at build
// time.
func (s *DropIndexStatement) IfExists() *DropIndexStatement {
	s.ifExists = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *DropIndexStatement) Take() DropIndexStatement {
	out := *s
	*s = DropIndexStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *DropIndexStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if dialect == DialectMySQL {
		if s.ifExists {
			panic("MySQL does not support IF EXISTS for DROP INDEX")
		}
		if s.table.Name() == "" {
			panic("MySQL requires ON table for DROP INDEX")
		}
	}
	w := newSQLWriter(dialect)
	w.keyword("DROP INDEX")
	switch dialect {
	case DialectMySQL:
		w.space()
		w.ident(string(s.name))
		w.keyword("ON")
		w.space()
		s.table.writeTo(w)
	default:
		if s.ifExists {
			w.keyword("IF EXISTS")
		}
		w.space()
		w.ident(string(s.name))
	}
	return w.finish()
}
