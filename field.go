package squill

import (
	"strings"
)

// Model is implemented by table structs. TableName must be callable on the
// zero value; Field handles are schema-level and never touch a Model
// instance.
type Model interface {
	TableName() string
}

func tableNameOf[M Model]() string {
	var m M
	return m.TableName()
}

// Cond is a predicate that can appear in a WHERE or HAVING clause.
type Cond interface {
	writeCond(w *sqlWriter)
}

// ColumnRef is an untyped column reference, optionally table-qualified.
type ColumnRef struct {
	Table Iden
	Name  Iden
}

// Col creates an unqualified column reference.
func Col(name string) ColumnRef { return ColumnRef{Name: Iden(name)} }

// TableCol creates a table-qualified column reference.
func TableCol(table, name string) ColumnRef {
	return ColumnRef{Table: Iden(table), Name: Iden(name)}
}

func (c ColumnRef) writeTo(w *sqlWriter) {
	if c.Table != "" {
		w.ident(string(c.Table))
		w.write(".")
	}
	w.ident(string(c.Name))
}

// Eq returns a 'col = value' Cond.
func (c ColumnRef) Eq(value any) Cond { return binaryCond{left: c, op: "=", right: value} }

// Ne returns a 'col <> value' Cond.
func (c ColumnRef) Ne(value any) Cond { return binaryCond{left: c, op: "<>", right: value} }

// Lt returns a 'col < value' Cond.
func (c ColumnRef) Lt(value any) Cond { return binaryCond{left: c, op: "<", right: value} }

// Le returns a 'col <= value' Cond.
func (c ColumnRef) Le(value any) Cond { return binaryCond{left: c, op: "<=", right: value} }

// Gt returns a 'col > value' Cond.
func (c ColumnRef) Gt(value any) Cond { return binaryCond{left: c, op: ">", right: value} }

// Ge returns a 'col >= value' Cond.
func (c ColumnRef) Ge(value any) Cond { return binaryCond{left: c, op: ">=", right: value} }

// Like returns a 'col LIKE pattern' Cond.
func (c ColumnRef) Like(pattern string) Cond {
	return binaryCond{left: c, op: "LIKE", right: pattern}
}

// NotLike returns a 'col NOT LIKE pattern' Cond.
func (c ColumnRef) NotLike(pattern string) Cond {
	return binaryCond{left: c, op: "NOT LIKE", right: pattern}
}

// In returns a 'col IN (v1, v2, …)' Cond.
func (c ColumnRef) In(values ...any) Cond { return inCond{left: c, values: values} }

// NotIn returns a 'col NOT IN (v1, v2, …)' Cond.
func (c ColumnRef) NotIn(values ...any) Cond {
	return inCond{left: c, values: values, negated: true}
}

// IsNull returns a 'col IS NULL' Cond.
func (c ColumnRef) IsNull() Cond { return nullCond{left: c} }

// IsNotNull returns a 'col IS NOT NULL' Cond.
func (c ColumnRef) IsNotNull() Cond { return nullCond{left: c, negated: true} }

// EqCol returns a 'col = other' Cond comparing two columns.
func (c ColumnRef) EqCol(other ColumnRef) Cond {
	return binaryCond{left: c, op: "=", right: other}
}

// Between returns a 'col BETWEEN lo AND hi' Cond.
func (c ColumnRef) Between(lo, hi any) Cond { return betweenCond{left: c, lo: lo, hi: hi} }

type binaryCond struct {
	left  ColumnRef
	op    string
	right any
}

func (c binaryCond) writeCond(w *sqlWriter) {
	c.left.writeTo(w)
	w.write(" " + c.op + " ")
	switch right := c.right.(type) {
	case ColumnRef:
		right.writeTo(w)
	case *SelectStatement:
		w.openGroup()
		right.writeTo(w)
		w.write(")")
	default:
		w.value(ValueOf(right))
	}
}

type inCond struct {
	left    ColumnRef
	values  []any
	negated bool
}

func (c inCond) writeCond(w *sqlWriter) {
	c.left.writeTo(w)
	if c.negated {
		w.write(" NOT IN (")
	} else {
		w.write(" IN (")
	}
	if len(c.values) == 1 {
		if sub, ok := c.values[0].(*SelectStatement); ok {
			w.suppressSpace = true
			sub.writeTo(w)
			w.write(")")
			return
		}
	}
	for i, value := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.value(ValueOf(value))
	}
	w.write(")")
}

type nullCond struct {
	left    ColumnRef
	negated bool
}

func (c nullCond) writeCond(w *sqlWriter) {
	c.left.writeTo(w)
	if c.negated {
		w.write(" IS NOT NULL")
	} else {
		w.write(" IS NULL")
	}
}

type betweenCond struct {
	left   ColumnRef
	lo, hi any
}

func (c betweenCond) writeCond(w *sqlWriter) {
	c.left.writeTo(w)
	w.write(" BETWEEN ")
	w.value(ValueOf(c.lo))
	w.write(" AND ")
	w.value(ValueOf(c.hi))
}

type variadicCond struct {
	op    string // "AND" or "OR"
	conds []Cond
}

func (c variadicCond) writeCond(w *sqlWriter) {
	if len(c.conds) == 1 {
		c.conds[0].writeCond(w)
		return
	}
	w.write("(")
	for i, cond := range c.conds {
		if i > 0 {
			w.write(" " + c.op + " ")
		}
		cond.writeCond(w)
	}
	w.write(")")
}

type notCond struct {
	cond Cond
}

func (c notCond) writeCond(w *sqlWriter) {
	w.write("NOT (")
	c.cond.writeCond(w)
	w.write(")")
}

// And combines conds with AND.
func And(conds ...Cond) Cond { return variadicCond{op: "AND", conds: conds} }

// Or combines conds with OR.
func Or(conds ...Cond) Cond { return variadicCond{op: "OR", conds: conds} }

// Not negates a cond.
func Not(cond Cond) Cond { return notCond{cond: cond} }

// Field is a typed handle over a dotted column path, bound to the model type
// M and the column's scalar type T. Two Fields are comparable or joinable
// only when their T matches exactly; a mismatch is a compile error.
type Field[M Model, T any] struct {
	path []string
}

// NewField creates a Field for the given path segments.
func NewField[M Model, T any](path ...string) Field[M, T] {
	return Field[M, T]{path: path}
}

// Path returns a copy of the path segments.
func (f Field[M, T]) Path() []string {
	path := make([]string, len(f.path))
	copy(path, f.path)
	return path
}

// ColumnName returns the path segments joined by '.'.
func (f Field[M, T]) ColumnName() string { return strings.Join(f.path, ".") }

// columnRef qualifies the field with its model's table name.
func (f Field[M, T]) columnRef() ColumnRef {
	return TableCol(tableNameOf[M](), f.ColumnName())
}

// Asc wraps the field into an ascending OrderingField.
func (f Field[M, T]) Asc() OrderingField[M] {
	return OrderingField[M]{path: f.Path()}
}

// Desc wraps the field into a descending OrderingField.
func (f Field[M, T]) Desc() OrderingField[M] {
	return OrderingField[M]{path: f.Path(), desc: true}
}

// Eq returns a 'field = value' Lookup.
func (f Field[M, T]) Eq(value T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Eq(value)}
}

// Ne returns a 'field <> value' Lookup.
func (f Field[M, T]) Ne(value T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Ne(value)}
}

// Lt returns a 'field < value' Lookup.
func (f Field[M, T]) Lt(value T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Lt(value)}
}

// Le returns a 'field <= value' Lookup.
func (f Field[M, T]) Le(value T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Le(value)}
}

// Gt returns a 'field > value' Lookup.
func (f Field[M, T]) Gt(value T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Gt(value)}
}

// Ge returns a 'field >= value' Lookup.
func (f Field[M, T]) Ge(value T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Ge(value)}
}

// In returns a 'field IN (…)' Lookup.
func (f Field[M, T]) In(values ...T) Lookup[M] {
	anys := make([]any, len(values))
	for i, v := range values {
		anys[i] = v
	}
	return Lookup[M]{cond: f.columnRef().In(anys...)}
}

// Between returns a 'field BETWEEN lo AND hi' Lookup.
func (f Field[M, T]) Between(lo, hi T) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Between(lo, hi)}
}

// Like returns a 'field LIKE pattern' Lookup.
func (f Field[M, T]) Like(pattern string) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().Like(pattern)}
}

// NotLike returns a 'field NOT LIKE pattern' Lookup.
func (f Field[M, T]) NotLike(pattern string) Lookup[M] {
	return Lookup[M]{cond: f.columnRef().NotLike(pattern)}
}

// IsNull returns a 'field IS NULL' Lookup.
func (f Field[M, T]) IsNull() Lookup[M] {
	return Lookup[M]{cond: f.columnRef().IsNull()}
}

// IsNotNull returns a 'field IS NOT NULL' Lookup.
func (f Field[M, T]) IsNotNull() Lookup[M] {
	return Lookup[M]{cond: f.columnRef().IsNotNull()}
}

// OrderingField is a Field plus a direction.
type OrderingField[M Model] struct {
	path []string
	desc bool
}

// ToSQL renders the ordering as '<dotted.path> ASC' or '<dotted.path> DESC'.
func (o OrderingField[M]) ToSQL() string {
	if o.desc {
		return strings.Join(o.path, ".") + " DESC"
	}
	return strings.Join(o.path, ".") + " ASC"
}

// Lookup is a predicate derived from one or more Fields of model M. It is
// consumed once when the statement's predicate tree is compiled.
type Lookup[M Model] struct {
	cond Cond
}

func (l Lookup[M]) writeCond(w *sqlWriter) {
	if l.cond == nil {
		return
	}
	l.cond.writeCond(w)
}

// And combines lookups with AND.
func (l Lookup[M]) And(others ...Lookup[M]) Lookup[M] {
	conds := make([]Cond, 0, len(others)+1)
	conds = append(conds, l.cond)
	for _, other := range others {
		conds = append(conds, other.cond)
	}
	return Lookup[M]{cond: And(conds...)}
}

// Or combines lookups with OR.
func (l Lookup[M]) Or(others ...Lookup[M]) Lookup[M] {
	conds := make([]Cond, 0, len(others)+1)
	conds = append(conds, l.cond)
	for _, other := range others {
		conds = append(conds, other.cond)
	}
	return Lookup[M]{cond: Or(conds...)}
}

// Not negates the lookup.
func (l Lookup[M]) Not() Lookup[M] { return Lookup[M]{cond: Not(l.cond)} }
