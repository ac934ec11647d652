package squill

// ProcedureParam is one parameter in a procedure signature. The type is a
// raw SQL type name, written verbatim.
type ProcedureParam struct {
	Name string
	Type string
}

// requireProcedures panics on dialects without stored procedures.
func requireProcedures(dialect string) {
	if dialect == DialectSQLite {
		panic("SQLite does not support stored procedures")
	}
}

// CreateProcedureStatement is a buildable CREATE PROCEDURE. Postgres and
// CockroachDB render `LANGUAGE <lang> AS $$…$$`; MySQL renders `BEGIN … END`.
type CreateProcedureStatement struct {
	name      Iden
	params    []ProcedureParam
	orReplace bool
	language  string
	body      string
}

// NewCreateProcedureStatement creates an empty CREATE PROCEDURE statement.
func NewCreateProcedureStatement() *CreateProcedureStatement {
	return &CreateProcedureStatement{}
}

// Name sets the procedure name.
func (s *CreateProcedureStatement) Name(name string) *CreateProcedureStatement {
	s.name = Iden(name)
	return s
}

// Param appends a parameter to the signature.
func (s *CreateProcedureStatement) Param(name, typ string) *CreateProcedureStatement {
	s.params = append(s.params, ProcedureParam{Name: name, Type: typ})
	return s
}

// OrReplace adds OR REPLACE. MySQL does not support it and panics at build
// time.
func (s *CreateProcedureStatement) OrReplace() *CreateProcedureStatement {
	s.orReplace = true
	return s
}

// Language sets the procedure language (Postgres/CockroachDB). Defaults to
// plpgsql.
func (s *CreateProcedureStatement) Language(language string) *CreateProcedureStatement {
	s.language = language
	return s
}

// Body sets the procedure body, written verbatim inside the dialect's body
// delimiters.
func (s *CreateProcedureStatement) Body(body string) *CreateProcedureStatement {
	s.body = body
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *CreateProcedureStatement) Take() CreateProcedureStatement {
	out := *s
	*s = CreateProcedureStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *CreateProcedureStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireProcedures(dialect)
	if s.orReplace && dialect == DialectMySQL {
		panic("MySQL does not support OR REPLACE for CREATE PROCEDURE")
	}
	w := newSQLWriter(dialect)
	w.keyword("CREATE")
	if s.orReplace {
		w.keyword("OR REPLACE")
	}
	w.keyword("PROCEDURE")
	w.space()
	w.ident(string(s.name))
	w.write("(")
	for i, param := range s.params {
		if i > 0 {
			w.write(", ")
		}
		w.ident(param.Name)
		w.space()
		w.write(param.Type)
	}
	w.write(")")
	switch dialect {
	case DialectMySQL:
		w.keyword("BEGIN")
		w.space()
		w.write(s.body)
		w.keyword("END")
	default:
		language := s.language
		if language == "" {
			language = "plpgsql"
		}
		w.keyword("LANGUAGE")
		w.space()
		w.write(language)
		w.keyword("AS $$")
		w.write(s.body)
		w.write("$$")
	}
	return w.finish()
}

// DropProcedureStatement is a buildable DROP PROCEDURE. Postgres and
// CockroachDB disambiguate overloads with a parameter type signature; MySQL
// has no overloading and rejects signatures and CASCADE.
type DropProcedureStatement struct {
	name       Iden
	paramTypes []string
	ifExists   bool
	cascade    bool
}

// NewDropProcedureStatement creates an empty DROP PROCEDURE statement.
func NewDropProcedureStatement() *DropProcedureStatement {
	return &DropProcedureStatement{}
}

// Name sets the procedure name.
func (s *DropProcedureStatement) Name(name string) *DropProcedureStatement {
	s.name = Iden(name)
	return s
}

// ParamTypes sets the signature used to select an overload
// (Postgres/CockroachDB only).
func (s *DropProcedureStatement) ParamTypes(types ...string) *DropProcedureStatement {
	s.paramTypes = append(s.paramTypes[:0], types...)
	return s
}

// IfExists adds IF EXISTS.
func (s *DropProcedureStatement) IfExists() *DropProcedureStatement {
	s.ifExists = true
	return s
}

// Cascade adds CASCADE (Postgres/CockroachDB only).
func (s *DropProcedureStatement) Cascade() *DropProcedureStatement {
	s.cascade = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *DropProcedureStatement) Take() DropProcedureStatement {
	out := *s
	*s = DropProcedureStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *DropProcedureStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireProcedures(dialect)
	if dialect == DialectMySQL {
		if len(s.paramTypes) > 0 {
			panic("MySQL does not support procedure overloading or parameters in DROP PROCEDURE")
		}
		if s.cascade {
			panic("MySQL does not support CASCADE for DROP PROCEDURE")
		}
	}
	w := newSQLWriter(dialect)
	w.keyword("DROP PROCEDURE")
	if s.ifExists {
		w.keyword("IF EXISTS")
	}
	w.space()
	w.ident(string(s.name))
	if len(s.paramTypes) > 0 {
		w.write("(")
		for i, typ := range s.paramTypes {
			if i > 0 {
				w.write(", ")
			}
			w.write(typ)
		}
		w.write(")")
	}
	if s.cascade {
		w.keyword("CASCADE")
	}
	return w.finish()
}
