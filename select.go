package squill

import "strings"

type selectColumn struct {
	ref   ColumnRef
	expr  string
	alias Iden
}

type joinSpec struct {
	joinType  JoinType
	table     string
	condition string
}

type orderBy struct {
	expr string
	desc bool
}

// SelectStatement is a buildable SELECT. The zero value is a valid empty
// statement; construct with NewSelectStatement and chain the fluent setters.
type SelectStatement struct {
	distinct bool
	columns  []selectColumn
	from     []TableRef
	joins    []joinSpec
	where    []Cond
	groupBy  []ColumnRef
	having   []Cond
	orderBy  []orderBy
	limit    *uint64
	offset   *uint64
}

// NewSelectStatement creates an empty select statement.
func NewSelectStatement() *SelectStatement { return &SelectStatement{} }

// Distinct marks the select as SELECT DISTINCT.
func (s *SelectStatement) Distinct() *SelectStatement {
	s.distinct = true
	return s
}

// Column adds a column to the projection.
func (s *SelectStatement) Column(col ColumnRef) *SelectStatement {
	s.columns = append(s.columns, selectColumn{ref: col})
	return s
}

// Columns adds unqualified columns to the projection.
func (s *SelectStatement) Columns(names ...string) *SelectStatement {
	for _, name := range names {
		s.columns = append(s.columns, selectColumn{ref: Col(name)})
	}
	return s
}

// ColumnAs adds an aliased column to the projection.
func (s *SelectStatement) ColumnAs(col ColumnRef, alias string) *SelectStatement {
	s.columns = append(s.columns, selectColumn{ref: col, alias: Iden(alias)})
	return s
}

// Expr adds a raw expression to the projection. The expression is written
// verbatim; it must not embed user-supplied data.
func (s *SelectStatement) Expr(expr string) *SelectStatement {
	s.columns = append(s.columns, selectColumn{expr: expr})
	return s
}

// ExprAs adds an aliased raw expression to the projection.
func (s *SelectStatement) ExprAs(expr, alias string) *SelectStatement {
	s.columns = append(s.columns, selectColumn{expr: expr, alias: Iden(alias)})
	return s
}

// From adds a table to the FROM clause.
func (s *SelectStatement) From(table TableRef) *SelectStatement {
	s.from = append(s.from, table)
	return s
}

// FromTable adds a bare table name to the FROM clause.
func (s *SelectStatement) FromTable(name string) *SelectStatement {
	return s.From(Table(name))
}

// Join attaches a join clause.
func (s *SelectStatement) Join(join JoinClause) *SelectStatement {
	table, joinType, condition := join.ToSQL()
	s.joins = append(s.joins, joinSpec{joinType: joinType, table: table, condition: condition})
	return s
}

// Where adds a condition, ANDed with any existing ones.
func (s *SelectStatement) Where(cond Cond) *SelectStatement {
	s.where = append(s.where, cond)
	return s
}

// Filter adds a typed lookup to the WHERE clause.
func Filter[M Model](s *SelectStatement, lookup Lookup[M]) *SelectStatement {
	return s.Where(lookup.cond)
}

// GroupBy adds grouping columns.
func (s *SelectStatement) GroupBy(cols ...ColumnRef) *SelectStatement {
	s.groupBy = append(s.groupBy, cols...)
	return s
}

// Having adds a HAVING condition, ANDed with any existing ones.
func (s *SelectStatement) Having(cond Cond) *SelectStatement {
	s.having = append(s.having, cond)
	return s
}

// OrderBy adds an ascending ordering on a column.
func (s *SelectStatement) OrderBy(col ColumnRef) *SelectStatement {
	s.orderBy = append(s.orderBy, orderBy{expr: columnPath(col)})
	return s
}

// OrderByDesc adds a descending ordering on a column.
func (s *SelectStatement) OrderByDesc(col ColumnRef) *SelectStatement {
	s.orderBy = append(s.orderBy, orderBy{expr: columnPath(col), desc: true})
	return s
}

// OrderByField adds a typed ordering.
func OrderByField[M Model](s *SelectStatement, field OrderingField[M]) *SelectStatement {
	s.orderBy = append(s.orderBy, orderBy{expr: strings.Join(field.path, "."), desc: field.desc})
	return s
}

// Limit sets the LIMIT; the count is bound as a parameter.
func (s *SelectStatement) Limit(n uint64) *SelectStatement {
	s.limit = &n
	return s
}

// Offset sets the OFFSET; the count is bound as a parameter.
func (s *SelectStatement) Offset(n uint64) *SelectStatement {
	s.offset = &n
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *SelectStatement) Take() SelectStatement {
	out := *s
	*s = SelectStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *SelectStatement) BuildAny(builder QueryBuilder) (string, Values) {
	w := newSQLWriter(builderDialect(builder))
	s.writeTo(w)
	return w.finish()
}

func (s *SelectStatement) writeTo(w *sqlWriter) {
	w.keyword("SELECT")
	if s.distinct {
		w.keyword("DISTINCT")
	}
	if len(s.columns) == 0 {
		w.keyword("*")
	} else {
		w.space()
		for i, col := range s.columns {
			if i > 0 {
				w.write(", ")
			}
			if col.expr != "" {
				w.write(col.expr)
			} else {
				col.ref.writeTo(w)
			}
			if col.alias != "" {
				w.write(" AS ")
				w.ident(string(col.alias))
			}
		}
	}
	if len(s.from) > 0 {
		w.keyword("FROM")
		w.space()
		for i, table := range s.from {
			if i > 0 {
				w.write(", ")
			}
			table.writeTo(w)
		}
	}
	for _, join := range s.joins {
		w.keyword(join.joinType.String())
		w.space()
		w.ident(join.table)
		w.keyword("ON")
		w.space()
		w.write(join.condition)
	}
	writeWhere(w, "WHERE", s.where)
	if len(s.groupBy) > 0 {
		w.keyword("GROUP BY")
		w.space()
		for i, col := range s.groupBy {
			if i > 0 {
				w.write(", ")
			}
			col.writeTo(w)
		}
	}
	writeWhere(w, "HAVING", s.having)
	if len(s.orderBy) > 0 {
		w.keyword("ORDER BY")
		w.space()
		for i, ob := range s.orderBy {
			if i > 0 {
				w.write(", ")
			}
			w.write(ob.expr)
			if ob.desc {
				w.write(" DESC")
			} else {
				w.write(" ASC")
			}
		}
	}
	if s.limit != nil {
		w.keyword("LIMIT")
		w.space()
		w.value(BigUnsignedValue(*s.limit))
	}
	if s.offset != nil {
		w.keyword("OFFSET")
		w.space()
		w.value(BigUnsignedValue(*s.offset))
	}
}

// writeWhere renders a condition list joined by AND under the given keyword.
func writeWhere(w *sqlWriter, keyword string, conds []Cond) {
	if len(conds) == 0 {
		return
	}
	w.keyword(keyword)
	w.space()
	for i, cond := range conds {
		if i > 0 {
			w.write(" AND ")
		}
		cond.writeCond(w)
	}
}

func columnPath(col ColumnRef) string {
	if col.Table != "" {
		return string(col.Table) + "." + string(col.Name)
	}
	return string(col.Name)
}
