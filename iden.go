package squill

// Iden is an opaque, dialect-agnostic SQL identifier (table, column, alias,
// schema or database name). It is immutable; two Idens are equal when their
// string contents are equal. Quoting is decided at render time by the
// dialect layer.
type Iden string

// String implements fmt.Stringer.
func (iden Iden) String() string { return string(iden) }

type tableRefKind int

const (
	tableRefTable tableRefKind = iota
	tableRefSchemaTable
	tableRefDatabaseSchemaTable
	tableRefTableAlias
	tableRefSchemaTableAlias
	tableRefSubQueryAlias
)

// TableRef is a closed set of table reference forms: bare, schema-qualified,
// database+schema-qualified, their aliased variants, and sub-query-as-table.
type TableRef struct {
	kind     tableRefKind
	database Iden
	schema   Iden
	name     Iden
	alias    Iden
	subquery *SelectStatement
}

// Table creates a bare table reference.
func Table(name string) TableRef {
	return TableRef{kind: tableRefTable, name: Iden(name)}
}

// SchemaTable creates a schema-qualified table reference.
func SchemaTable(schema, name string) TableRef {
	return TableRef{kind: tableRefSchemaTable, schema: Iden(schema), name: Iden(name)}
}

// DatabaseSchemaTable creates a database+schema-qualified table reference.
func DatabaseSchemaTable(database, schema, name string) TableRef {
	return TableRef{
		kind:     tableRefDatabaseSchemaTable,
		database: Iden(database),
		schema:   Iden(schema),
		name:     Iden(name),
	}
}

// SubQueryTable creates a sub-query-as-table reference. The alias is
// mandatory; every dialect here requires derived tables to be named.
func SubQueryTable(subquery *SelectStatement, alias string) TableRef {
	return TableRef{kind: tableRefSubQueryAlias, subquery: subquery, alias: Iden(alias)}
}

// As returns an aliased copy of the table reference.
func (t TableRef) As(alias string) TableRef {
	t.alias = Iden(alias)
	switch t.kind {
	case tableRefTable:
		t.kind = tableRefTableAlias
	case tableRefSchemaTable:
		t.kind = tableRefSchemaTableAlias
	}
	return t
}

// Name returns the referenced table name (empty for sub-queries).
func (t TableRef) Name() Iden { return t.name }

// Alias returns the alias, if any.
func (t TableRef) Alias() Iden { return t.alias }

func (t TableRef) writeTo(w *sqlWriter) {
	switch t.kind {
	case tableRefTable:
		w.ident(string(t.name))
	case tableRefSchemaTable:
		w.ident(string(t.schema))
		w.write(".")
		w.ident(string(t.name))
	case tableRefDatabaseSchemaTable:
		w.ident(string(t.database))
		w.write(".")
		w.ident(string(t.schema))
		w.write(".")
		w.ident(string(t.name))
	case tableRefTableAlias:
		w.ident(string(t.name))
		w.write(" AS ")
		w.ident(string(t.alias))
	case tableRefSchemaTableAlias:
		w.ident(string(t.schema))
		w.write(".")
		w.ident(string(t.name))
		w.write(" AS ")
		w.ident(string(t.alias))
	case tableRefSubQueryAlias:
		w.openGroup()
		if t.subquery != nil {
			t.subquery.writeTo(w)
		}
		w.write(") AS ")
		w.ident(string(t.alias))
	}
}

// aliasOrName returns the name the table is addressable by inside the
// statement.
func (t TableRef) aliasOrName() Iden {
	if t.alias != "" {
		return t.alias
	}
	return t.name
}
