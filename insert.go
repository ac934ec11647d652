package squill

// InsertStatement is a buildable INSERT. Row widths are checked against the
// column list at append time so a malformed statement fails at the call site
// rather than at compile time.
type InsertStatement struct {
	into    TableRef
	columns []Iden
	rows    [][]Value
	select_ *SelectStatement
}

// NewInsertStatement creates an empty insert statement.
func NewInsertStatement() *InsertStatement { return &InsertStatement{} }

// Into sets the target table.
func (s *InsertStatement) Into(table TableRef) *InsertStatement {
	s.into = table
	return s
}

// IntoTable sets the target table by name.
func (s *InsertStatement) IntoTable(name string) *InsertStatement {
	return s.Into(Table(name))
}

// Columns sets the column list.
func (s *InsertStatement) Columns(names ...string) *InsertStatement {
	s.columns = s.columns[:0]
	for _, name := range names {
		s.columns = append(s.columns, Iden(name))
	}
	return s
}

// Values appends one row. Panics if the row width does not match the column
// list.
func (s *InsertStatement) Values(values ...any) *InsertStatement {
	if len(s.columns) > 0 && len(values) != len(s.columns) {
		panic("insert row width does not match column list")
	}
	row := make([]Value, len(values))
	for i, v := range values {
		row[i] = ValueOf(v)
	}
	s.rows = append(s.rows, row)
	return s
}

// FromSelect sets a SELECT as the row source, replacing any VALUES rows.
func (s *InsertStatement) FromSelect(sub *SelectStatement) *InsertStatement {
	s.select_ = sub
	s.rows = nil
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *InsertStatement) Take() InsertStatement {
	out := *s
	*s = InsertStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *InsertStatement) BuildAny(builder QueryBuilder) (string, Values) {
	w := newSQLWriter(builderDialect(builder))
	s.writeTo(w)
	return w.finish()
}

func (s *InsertStatement) writeTo(w *sqlWriter) {
	w.keyword("INSERT INTO")
	w.space()
	s.into.writeTo(w)
	if len(s.columns) > 0 {
		w.write(" (")
		w.idents(s.columns)
		w.write(")")
	}
	if s.select_ != nil {
		s.select_.writeTo(w)
		return
	}
	w.keyword("VALUES")
	w.space()
	for i, row := range s.rows {
		if i > 0 {
			w.write(", ")
		}
		w.write("(")
		for j, v := range row {
			if j > 0 {
				w.write(", ")
			}
			w.value(v)
		}
		w.write(")")
	}
}
