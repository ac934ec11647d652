package squill

// Privilege is the closed set of grantable privileges.
type Privilege int

const (
	PrivilegeSelect Privilege = iota
	PrivilegeInsert
	PrivilegeUpdate
	PrivilegeDelete
	PrivilegeReferences
	PrivilegeTruncate
	PrivilegeTrigger
	PrivilegeMaintain
	PrivilegeCreate
	PrivilegeConnect
	PrivilegeTemporary
	PrivilegeUsage
	PrivilegeExecute
	PrivilegeSet
	PrivilegeAlterSystem
	PrivilegeAll
)

// AsSQL returns the privilege's SQL keyword sequence.
func (p Privilege) AsSQL() string {
	switch p {
	case PrivilegeSelect:
		return "SELECT"
	case PrivilegeInsert:
		return "INSERT"
	case PrivilegeUpdate:
		return "UPDATE"
	case PrivilegeDelete:
		return "DELETE"
	case PrivilegeReferences:
		return "REFERENCES"
	case PrivilegeTruncate:
		return "TRUNCATE"
	case PrivilegeTrigger:
		return "TRIGGER"
	case PrivilegeMaintain:
		return "MAINTAIN"
	case PrivilegeCreate:
		return "CREATE"
	case PrivilegeConnect:
		return "CONNECT"
	case PrivilegeTemporary:
		return "TEMPORARY"
	case PrivilegeUsage:
		return "USAGE"
	case PrivilegeExecute:
		return "EXECUTE"
	case PrivilegeSet:
		return "SET"
	case PrivilegeAlterSystem:
		return "ALTER SYSTEM"
	case PrivilegeAll:
		return "ALL PRIVILEGES"
	default:
		return ""
	}
}

// IsPostgresOnly reports whether only Postgres-family dialects accept the
// privilege.
func (p Privilege) IsPostgresOnly() bool {
	switch p {
	case PrivilegeTruncate, PrivilegeTrigger, PrivilegeMaintain, PrivilegeUsage,
		PrivilegeConnect, PrivilegeTemporary, PrivilegeExecute, PrivilegeSet,
		PrivilegeAlterSystem:
		return true
	default:
		return false
	}
}

// ObjectType is the closed set of grant targets.
type ObjectType int

const (
	ObjectTable ObjectType = iota
	ObjectDatabase
	ObjectSchema
	ObjectSequence
	ObjectFunction
	ObjectProcedure
	ObjectRoutine
	ObjectDataType
	ObjectDomain
	ObjectLanguage
	ObjectLargeObject
	ObjectForeignDataWrapper
	ObjectForeignServer
	ObjectTablespace
	ObjectParameter
)

// AsSQL returns the object type's SQL keyword sequence.
func (o ObjectType) AsSQL() string {
	switch o {
	case ObjectTable:
		return "TABLE"
	case ObjectDatabase:
		return "DATABASE"
	case ObjectSchema:
		return "SCHEMA"
	case ObjectSequence:
		return "SEQUENCE"
	case ObjectFunction:
		return "FUNCTION"
	case ObjectProcedure:
		return "PROCEDURE"
	case ObjectRoutine:
		return "ROUTINE"
	case ObjectDataType:
		return "TYPE"
	case ObjectDomain:
		return "DOMAIN"
	case ObjectLanguage:
		return "LANGUAGE"
	case ObjectLargeObject:
		return "LARGE OBJECT"
	case ObjectForeignDataWrapper:
		return "FOREIGN DATA WRAPPER"
	case ObjectForeignServer:
		return "FOREIGN SERVER"
	case ObjectTablespace:
		return "TABLESPACE"
	case ObjectParameter:
		return "PARAMETER"
	default:
		return ""
	}
}

// IsValidForObject reports whether the privilege can be granted on the
// object type.
func (p Privilege) IsValidForObject(o ObjectType) bool {
	if p == PrivilegeAll {
		return true
	}
	switch o {
	case ObjectTable:
		switch p {
		case PrivilegeSelect, PrivilegeInsert, PrivilegeUpdate, PrivilegeDelete,
			PrivilegeReferences, PrivilegeTruncate, PrivilegeTrigger, PrivilegeMaintain:
			return true
		}
	case ObjectDatabase:
		switch p {
		case PrivilegeCreate, PrivilegeConnect, PrivilegeTemporary:
			return true
		}
	case ObjectSchema:
		switch p {
		case PrivilegeCreate, PrivilegeUsage:
			return true
		}
	case ObjectSequence:
		switch p {
		case PrivilegeUsage, PrivilegeSelect, PrivilegeUpdate:
			return true
		}
	case ObjectFunction, ObjectProcedure, ObjectRoutine:
		return p == PrivilegeExecute
	case ObjectDataType, ObjectDomain, ObjectLanguage, ObjectForeignDataWrapper, ObjectForeignServer:
		return p == PrivilegeUsage
	case ObjectLargeObject:
		return p == PrivilegeSelect || p == PrivilegeUpdate
	case ObjectTablespace:
		return p == PrivilegeCreate
	case ObjectParameter:
		return p == PrivilegeSet || p == PrivilegeAlterSystem
	}
	return false
}

// requirePrivileges panics on dialects without a privilege system, and on
// MySQL when a Postgres-only privilege is present.
func requirePrivileges(dialect string, privileges []Privilege) {
	if dialect == DialectSQLite {
		panic("SQLite does not support privileges")
	}
	if dialect == DialectMySQL {
		for _, p := range privileges {
			if p.IsPostgresOnly() {
				panic("MySQL does not support the " + p.AsSQL() + " privilege")
			}
		}
	}
}

type grantSpec struct {
	privileges []Privilege
	objectType ObjectType
	objects    []string
	grantees   []string
}

func (g *grantSpec) setPrivileges(privileges []Privilege) {
	g.privileges = append(g.privileges[:0], privileges...)
}

func (g *grantSpec) setObjects(objectType ObjectType, names []string) error {
	objects := make([]string, 0, len(names))
	for _, name := range names {
		trimmed, err := validateName("Object name", name)
		if err != nil {
			return err
		}
		objects = append(objects, trimmed)
	}
	g.objectType = objectType
	g.objects = objects
	return nil
}

func (g *grantSpec) setGrantees(names []string) error {
	grantees := make([]string, 0, len(names))
	for _, name := range names {
		trimmed, err := validateName("Grantee", name)
		if err != nil {
			return err
		}
		grantees = append(grantees, trimmed)
	}
	g.grantees = grantees
	return nil
}

// checkMatrix panics if any privilege is invalid for the object type.
// Granting SELECT on a database is a programming error, not a runtime
// condition.
func (g *grantSpec) checkMatrix() {
	for _, p := range g.privileges {
		if !p.IsValidForObject(g.objectType) {
			panic(p.AsSQL() + " cannot be granted on " + g.objectType.AsSQL())
		}
	}
}

func (g *grantSpec) writePrivileges(w *sqlWriter) {
	for i, p := range g.privileges {
		if i > 0 {
			w.write(", ")
		}
		w.write(p.AsSQL())
	}
}

func (g *grantSpec) writeObjects(w *sqlWriter) {
	w.keyword("ON")
	w.keyword(g.objectType.AsSQL())
	w.space()
	for i, name := range g.objects {
		if i > 0 {
			w.write(", ")
		}
		w.ident(name)
	}
}

func (g *grantSpec) writeGrantees(w *sqlWriter) {
	for i, name := range g.grantees {
		if i > 0 {
			w.write(", ")
		}
		writeAccount(w, name)
	}
}

// GrantStatement is a buildable GRANT.
type GrantStatement struct {
	builder     QueryBuilder
	spec        grantSpec
	grantOption bool
}

// NewGrantStatement creates an empty GRANT statement for the given builder.
func NewGrantStatement(builder QueryBuilder) *GrantStatement {
	return &GrantStatement{builder: builder}
}

// Privileges sets the privileges to grant.
func (s *GrantStatement) Privileges(privileges ...Privilege) *GrantStatement {
	s.spec.setPrivileges(privileges)
	return s
}

// On sets the object type and the objects granted on.
func (s *GrantStatement) On(objectType ObjectType, names ...string) (*GrantStatement, error) {
	if err := s.spec.setObjects(objectType, names); err != nil {
		return s, err
	}
	return s, nil
}

// To sets the grantees.
func (s *GrantStatement) To(names ...string) (*GrantStatement, error) {
	if err := s.spec.setGrantees(names); err != nil {
		return s, err
	}
	return s, nil
}

// WithGrantOption adds WITH GRANT OPTION.
func (s *GrantStatement) WithGrantOption() *GrantStatement {
	s.grantOption = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *GrantStatement) Take() GrantStatement {
	out := *s
	*s = GrantStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *GrantStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *GrantStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requirePrivileges(dialect, s.spec.privileges)
	s.spec.checkMatrix()
	w := newSQLWriter(dialect)
	w.keyword("GRANT")
	w.space()
	s.spec.writePrivileges(w)
	s.spec.writeObjects(w)
	w.keyword("TO")
	w.space()
	s.spec.writeGrantees(w)
	if s.grantOption {
		w.keyword("WITH GRANT OPTION")
	}
	return w.finish()
}

// RevokeStatement is a buildable REVOKE.
type RevokeStatement struct {
	builder QueryBuilder
	spec    grantSpec
	cascade bool
}

// NewRevokeStatement creates an empty REVOKE statement for the given
// builder.
func NewRevokeStatement(builder QueryBuilder) *RevokeStatement {
	return &RevokeStatement{builder: builder}
}

// Privileges sets the privileges to revoke.
func (s *RevokeStatement) Privileges(privileges ...Privilege) *RevokeStatement {
	s.spec.setPrivileges(privileges)
	return s
}

// On sets the object type and the objects revoked on.
func (s *RevokeStatement) On(objectType ObjectType, names ...string) (*RevokeStatement, error) {
	if err := s.spec.setObjects(objectType, names); err != nil {
		return s, err
	}
	return s, nil
}

// From sets the grantees revoked from.
func (s *RevokeStatement) From(names ...string) (*RevokeStatement, error) {
	if err := s.spec.setGrantees(names); err != nil {
		return s, err
	}
	return s, nil
}

// Cascade adds CASCADE (Postgres/CockroachDB only).
func (s *RevokeStatement) Cascade() *RevokeStatement {
	s.cascade = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *RevokeStatement) Take() RevokeStatement {
	out := *s
	*s = RevokeStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *RevokeStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *RevokeStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requirePrivileges(dialect, s.spec.privileges)
	s.spec.checkMatrix()
	if s.cascade && dialect == DialectMySQL {
		panic("MySQL does not support CASCADE for REVOKE")
	}
	w := newSQLWriter(dialect)
	w.keyword("REVOKE")
	w.space()
	s.spec.writePrivileges(w)
	s.spec.writeObjects(w)
	w.keyword("FROM")
	w.space()
	s.spec.writeGrantees(w)
	if s.cascade {
		w.keyword("CASCADE")
	}
	return w.finish()
}
