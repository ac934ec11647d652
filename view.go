package squill

// CreateViewStatement is a buildable CREATE VIEW.
type CreateViewStatement struct {
	name        Iden
	columns     []Iden
	orReplace   bool
	ifNotExists bool
	as          *SelectStatement
}

// NewCreateViewStatement creates an empty CREATE VIEW statement.
func NewCreateViewStatement() *CreateViewStatement { return &CreateViewStatement{} }

// Name sets the view name.
func (s *CreateViewStatement) Name(name string) *CreateViewStatement {
	s.name = Iden(name)
	return s
}

// Columns sets explicit view column names.
func (s *CreateViewStatement) Columns(names ...string) *CreateViewStatement {
	s.columns = s.columns[:0]
	for _, name := range names {
		s.columns = append(s.columns, Iden(name))
	}
	return s
}

// OrReplace adds OR REPLACE. SQLite does not support it and panics at build
// time.
func (s *CreateViewStatement) OrReplace() *CreateViewStatement {
	s.orReplace = true
	return s
}

// IfNotExists adds IF NOT EXISTS (SQLite and CockroachDB only).
func (s *CreateViewStatement) IfNotExists() *CreateViewStatement {
	s.ifNotExists = true
	return s
}

// As sets the defining query.
func (s *CreateViewStatement) As(query *SelectStatement) *CreateViewStatement {
	s.as = query
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *CreateViewStatement) Take() CreateViewStatement {
	out := *s
	*s = CreateViewStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *CreateViewStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if s.orReplace && dialect == DialectSQLite {
		panic("SQLite does not support OR REPLACE for CREATE VIEW")
	}
	if s.ifNotExists && (dialect == DialectPostgres || dialect == DialectMySQL) {
		panic(dialectLabel(dialect) + " does not support IF NOT EXISTS for CREATE VIEW")
	}
	w := newSQLWriter(dialect)
	w.keyword("CREATE")
	if s.orReplace {
		w.keyword("OR REPLACE")
	}
	w.keyword("VIEW")
	if s.ifNotExists {
		w.keyword("IF NOT EXISTS")
	}
	w.space()
	w.ident(string(s.name))
	if len(s.columns) > 0 {
		w.write(" (")
		w.idents(s.columns)
		w.write(")")
	}
	w.keyword("AS")
	if s.as != nil {
		s.as.writeTo(w)
	}
	return w.finish()
}

// DropViewStatement is a buildable DROP VIEW.
type DropViewStatement struct {
	names    []Iden
	ifExists bool
	cascade  bool
	restrict bool
}

// NewDropViewStatement creates an empty DROP VIEW statement.
func NewDropViewStatement() *DropViewStatement { return &DropViewStatement{} }

// Name appends a view to drop.
func (s *DropViewStatement) Name(name string) *DropViewStatement {
	s.names = append(s.names, Iden(name))
	return s
}

// IfExists adds IF EXISTS.
func (s *DropViewStatement) IfExists() *DropViewStatement {
	s.ifExists = true
	return s
}

// Cascade adds CASCADE. Panics at build time on SQLite.
func (s *DropViewStatement) Cascade() *DropViewStatement {
	s.cascade = true
	s.restrict = false
	return s
}

// Restrict adds RESTRICT. Panics at build time on SQLite.
func (s *DropViewStatement) Restrict() *DropViewStatement {
	s.restrict = true
	s.cascade = false
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *DropViewStatement) Take() DropViewStatement {
	out := *s
	*s = DropViewStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *DropViewStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if dialect == DialectSQLite && (s.cascade || s.restrict) {
		panic("SQLite does not support CASCADE or RESTRICT for DROP VIEW")
	}
	w := newSQLWriter(dialect)
	w.keyword("DROP VIEW")
	if s.ifExists {
		w.keyword("IF EXISTS")
	}
	w.space()
	w.idents(s.names)
	if s.cascade {
		w.keyword("CASCADE")
	}
	if s.restrict {
		w.keyword("RESTRICT")
	}
	return w.finish()
}

// requireMaterializedViews panics on dialects without materialized views.
func requireMaterializedViews(dialect string) {
	switch dialect {
	case DialectMySQL:
		panic("MySQL does not support materialized views")
	case DialectSQLite:
		panic("SQLite does not support materialized views")
	}
}

// CreateMaterializedViewStatement is a buildable CREATE MATERIALIZED VIEW
// (Postgres and CockroachDB only).
type CreateMaterializedViewStatement struct {
	name        Iden
	columns     []Iden
	ifNotExists bool
	withNoData  bool
	as          *SelectStatement
}

// NewCreateMaterializedViewStatement creates an empty CREATE MATERIALIZED
// VIEW statement.
func NewCreateMaterializedViewStatement() *CreateMaterializedViewStatement {
	return &CreateMaterializedViewStatement{}
}

// Name sets the view name.
func (s *CreateMaterializedViewStatement) Name(name string) *CreateMaterializedViewStatement {
	s.name = Iden(name)
	return s
}

// Columns sets explicit view column names.
func (s *CreateMaterializedViewStatement) Columns(names ...string) *CreateMaterializedViewStatement {
	s.columns = s.columns[:0]
	for _, name := range names {
		s.columns = append(s.columns, Iden(name))
	}
	return s
}

// IfNotExists adds IF NOT EXISTS.
func (s *CreateMaterializedViewStatement) IfNotExists() *CreateMaterializedViewStatement {
	s.ifNotExists = true
	return s
}

// WithNoData adds WITH NO DATA.
func (s *CreateMaterializedViewStatement) WithNoData() *CreateMaterializedViewStatement {
	s.withNoData = true
	return s
}

// As sets the defining query.
func (s *CreateMaterializedViewStatement) As(query *SelectStatement) *CreateMaterializedViewStatement {
	s.as = query
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *CreateMaterializedViewStatement) Take() CreateMaterializedViewStatement {
	out := *s
	*s = CreateMaterializedViewStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *CreateMaterializedViewStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireMaterializedViews(dialect)
	w := newSQLWriter(dialect)
	w.keyword("CREATE MATERIALIZED VIEW")
	if s.ifNotExists {
		w.keyword("IF NOT EXISTS")
	}
	w.space()
	w.ident(string(s.name))
	if len(s.columns) > 0 {
		w.write(" (")
		w.idents(s.columns)
		w.write(")")
	}
	w.keyword("AS")
	if s.as != nil {
		s.as.writeTo(w)
	}
	if s.withNoData {
		w.keyword("WITH NO DATA")
	}
	return w.finish()
}

// DropMaterializedViewStatement is a buildable DROP MATERIALIZED VIEW
// (Postgres and CockroachDB only).
type DropMaterializedViewStatement struct {
	names    []Iden
	ifExists bool
	cascade  bool
	restrict bool
}

// NewDropMaterializedViewStatement creates an empty DROP MATERIALIZED VIEW
// statement.
func NewDropMaterializedViewStatement() *DropMaterializedViewStatement {
	return &DropMaterializedViewStatement{}
}

// Name appends a view to drop.
func (s *DropMaterializedViewStatement) Name(name string) *DropMaterializedViewStatement {
	s.names = append(s.names, Iden(name))
	return s
}

// IfExists adds IF EXISTS.
func (s *DropMaterializedViewStatement) IfExists() *DropMaterializedViewStatement {
	s.ifExists = true
	return s
}

// Cascade adds CASCADE.
func (s *DropMaterializedViewStatement) Cascade() *DropMaterializedViewStatement {
	s.cascade = true
	s.restrict = false
	return s
}

// Restrict adds RESTRICT.
func (s *DropMaterializedViewStatement) Restrict() *DropMaterializedViewStatement {
	s.restrict = true
	s.cascade = false
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *DropMaterializedViewStatement) Take() DropMaterializedViewStatement {
	out := *s
	*s = DropMaterializedViewStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *DropMaterializedViewStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireMaterializedViews(dialect)
	w := newSQLWriter(dialect)
	w.keyword("DROP MATERIALIZED VIEW")
	if s.ifExists {
		w.keyword("IF EXISTS")
	}
	w.space()
	w.idents(s.names)
	if s.cascade {
		w.keyword("CASCADE")
	}
	if s.restrict {
		w.keyword("RESTRICT")
	}
	return w.finish()
}

// RefreshMaterializedViewStatement is a buildable REFRESH MATERIALIZED VIEW
// (Postgres and CockroachDB only).
type RefreshMaterializedViewStatement struct {
	name         Iden
	concurrently bool
	withNoData   bool
}

// NewRefreshMaterializedViewStatement creates an empty REFRESH MATERIALIZED
// VIEW statement.
func NewRefreshMaterializedViewStatement() *RefreshMaterializedViewStatement {
	return &RefreshMaterializedViewStatement{}
}

// Name sets the view to refresh.
func (s *RefreshMaterializedViewStatement) Name(name string) *RefreshMaterializedViewStatement {
	s.name = Iden(name)
	return s
}

// Concurrently adds CONCURRENTLY.
func (s *RefreshMaterializedViewStatement) Concurrently() *RefreshMaterializedViewStatement {
	s.concurrently = true
	return s
}

// WithNoData adds WITH NO DATA.
func (s *RefreshMaterializedViewStatement) WithNoData() *RefreshMaterializedViewStatement {
	s.withNoData = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *RefreshMaterializedViewStatement) Take() RefreshMaterializedViewStatement {
	out := *s
	*s = RefreshMaterializedViewStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *RefreshMaterializedViewStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireMaterializedViews(dialect)
	w := newSQLWriter(dialect)
	w.keyword("REFRESH MATERIALIZED VIEW")
	if s.concurrently {
		w.keyword("CONCURRENTLY")
	}
	w.space()
	w.ident(string(s.name))
	if s.withNoData {
		w.keyword("WITH NO DATA")
	}
	return w.finish()
}
