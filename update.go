package squill

type assignment struct {
	column Iden
	value  Value
	expr   string
}

// UpdateStatement is a buildable UPDATE. Assignments render in the order
// they were added.
type UpdateStatement struct {
	table TableRef
	sets  []assignment
	where []Cond
}

// NewUpdateStatement creates an empty update statement.
func NewUpdateStatement() *UpdateStatement { return &UpdateStatement{} }

// Table sets the target table.
func (s *UpdateStatement) Table(table TableRef) *UpdateStatement {
	s.table = table
	return s
}

// TableName sets the target table by name.
func (s *UpdateStatement) TableName(name string) *UpdateStatement {
	return s.Table(Table(name))
}

// Set assigns a parameterized value to a column.
func (s *UpdateStatement) Set(column string, value any) *UpdateStatement {
	s.sets = append(s.sets, assignment{column: Iden(column), value: ValueOf(value)})
	return s
}

// SetExpr assigns a raw expression to a column. The expression is written
// verbatim; it must not embed user-supplied data.
func (s *UpdateStatement) SetExpr(column string, expr string) *UpdateStatement {
	s.sets = append(s.sets, assignment{column: Iden(column), expr: expr})
	return s
}

// Where adds a condition, ANDed with any existing ones.
func (s *UpdateStatement) Where(cond Cond) *UpdateStatement {
	s.where = append(s.where, cond)
	return s
}

// FilterUpdate adds a typed lookup to the WHERE clause.
func FilterUpdate[M Model](s *UpdateStatement, lookup Lookup[M]) *UpdateStatement {
	return s.Where(lookup.cond)
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *UpdateStatement) Take() UpdateStatement {
	out := *s
	*s = UpdateStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *UpdateStatement) BuildAny(builder QueryBuilder) (string, Values) {
	w := newSQLWriter(builderDialect(builder))
	s.writeTo(w)
	return w.finish()
}

func (s *UpdateStatement) writeTo(w *sqlWriter) {
	w.keyword("UPDATE")
	w.space()
	s.table.writeTo(w)
	w.keyword("SET")
	w.space()
	for i, set := range s.sets {
		if i > 0 {
			w.write(", ")
		}
		w.ident(string(set.column))
		w.write(" = ")
		if set.expr != "" {
			w.write(set.expr)
		} else {
			w.value(set.value)
		}
	}
	writeWhere(w, "WHERE", s.where)
}
