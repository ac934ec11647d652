package squill

// DeleteStatement is a buildable DELETE.
type DeleteStatement struct {
	from  TableRef
	where []Cond
}

// NewDeleteStatement creates an empty delete statement.
func NewDeleteStatement() *DeleteStatement { return &DeleteStatement{} }

// From sets the target table.
func (s *DeleteStatement) From(table TableRef) *DeleteStatement {
	s.from = table
	return s
}

// FromTable sets the target table by name.
func (s *DeleteStatement) FromTable(name string) *DeleteStatement {
	return s.From(Table(name))
}

// Where adds a condition, ANDed with any existing ones.
func (s *DeleteStatement) Where(cond Cond) *DeleteStatement {
	s.where = append(s.where, cond)
	return s
}

// FilterDelete adds a typed lookup to the WHERE clause.
func FilterDelete[M Model](s *DeleteStatement, lookup Lookup[M]) *DeleteStatement {
	return s.Where(lookup.cond)
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *DeleteStatement) Take() DeleteStatement {
	out := *s
	*s = DeleteStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *DeleteStatement) BuildAny(builder QueryBuilder) (string, Values) {
	w := newSQLWriter(builderDialect(builder))
	s.writeTo(w)
	return w.finish()
}

func (s *DeleteStatement) writeTo(w *sqlWriter) {
	w.keyword("DELETE FROM")
	w.space()
	s.from.writeTo(w)
	writeWhere(w, "WHERE", s.where)
}
