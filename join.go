package squill

// JoinType is the closed set of supported join kinds.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
)

// String returns the SQL keyword sequence for the join type.
func (jt JoinType) String() string {
	switch jt {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	default:
		return "JOIN"
	}
}

// JoinClause is anything that can be attached to a select as a join. The
// returned condition is raw SQL text; it carries no parameters.
type JoinClause interface {
	ToSQL() (table string, joinType JoinType, condition string)
}

// TypedJoin is an equi-join between a Field of L and a Field of R. The two
// fields must share a scalar type; constructing a join across mismatched
// column types does not compile.
type TypedJoin[L Model, R Model] struct {
	joinType  JoinType
	rightName string
	condition string
}

func newTypedJoin[L Model, R Model, T any](joinType JoinType, left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return TypedJoin[L, R]{
		joinType:  joinType,
		rightName: tableNameOf[R](),
		condition: tableNameOf[L]() + "." + left.ColumnName() + " = " + tableNameOf[R]() + "." + right.ColumnName(),
	}
}

// On creates an inner join on left = right.
func On[L Model, R Model, T any](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return newTypedJoin(JoinInner, left, right)
}

// LeftOn creates a left outer join on left = right.
func LeftOn[L Model, R Model, T any](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return newTypedJoin(JoinLeft, left, right)
}

// RightOn creates a right outer join on left = right.
func RightOn[L Model, R Model, T any](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return newTypedJoin(JoinRight, left, right)
}

// FullOn creates a full outer join on left = right.
func FullOn[L Model, R Model, T any](left Field[L, T], right Field[R, T]) TypedJoin[L, R] {
	return newTypedJoin(JoinFull, left, right)
}

// ToSQL returns the joined table name, the join type and the rendered join
// condition.
func (j TypedJoin[L, R]) ToSQL() (string, JoinType, string) {
	return j.rightName, j.joinType, j.condition
}

// rawJoin is an untyped join clause used by JoinOn.
type rawJoin struct {
	joinType  JoinType
	table     string
	condition string
}

func (j rawJoin) ToSQL() (string, JoinType, string) {
	return j.table, j.joinType, j.condition
}

// JoinOn creates an untyped join clause with a raw condition.
func JoinOn(joinType JoinType, table string, condition string) JoinClause {
	return rawJoin{joinType: joinType, table: table, condition: condition}
}
