package squill

import (
	"fmt"
	"strings"
)

// validateName trims the name and rejects empty or whitespace-only input.
// The label names the argument in the error message.
func validateName(label, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%s cannot be empty or whitespace", label)
	}
	return trimmed, nil
}

// writeAccount renders a user account name. MySQL accounts carry a host
// part; everything here uses the '%' wildcard host.
func writeAccount(w *sqlWriter, name string) {
	if w.dialect == DialectMySQL {
		w.write("'" + EscapeQuote(name, '\'') + "'@'%'")
	} else {
		w.write(`"` + EscapeQuote(name, '"') + `"`)
	}
}

// writeRole renders a role name. MySQL role names are single-quoted without
// a host part.
func writeRole(w *sqlWriter, name string) {
	if w.dialect == DialectMySQL {
		w.write("'" + EscapeQuote(name, '\'') + "'")
	} else {
		w.write(`"` + EscapeQuote(name, '"') + `"`)
	}
}

func writeStringLiteral(w *sqlWriter, s string) {
	w.write("'" + EscapeQuote(s, '\'') + "'")
}

// requireRoles panics on dialects without a role system.
func requireRoles(dialect string) {
	if dialect == DialectSQLite {
		panic("SQLite does not support roles")
	}
}

// CreateUserStatement is a buildable CREATE USER. DCL statements bind their
// builder at construction; name arguments are validated eagerly and setters
// return the validation error.
type CreateUserStatement struct {
	builder  QueryBuilder
	name     string
	password string
}

// NewCreateUserStatement creates an empty CREATE USER statement for the
// given builder.
func NewCreateUserStatement(builder QueryBuilder) *CreateUserStatement {
	return &CreateUserStatement{builder: builder}
}

// Name sets the user name.
func (s *CreateUserStatement) Name(name string) (*CreateUserStatement, error) {
	trimmed, err := validateName("Username", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	return s, nil
}

// Password sets the user's password.
func (s *CreateUserStatement) Password(password string) (*CreateUserStatement, error) {
	trimmed, err := validateName("Password", password)
	if err != nil {
		return s, err
	}
	s.password = trimmed
	return s, nil
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *CreateUserStatement) Take() CreateUserStatement {
	out := *s
	*s = CreateUserStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *CreateUserStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *CreateUserStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	w := newSQLWriter(dialect)
	w.keyword("CREATE USER")
	w.space()
	writeAccount(w, s.name)
	if s.password != "" {
		if dialect == DialectMySQL {
			w.keyword("IDENTIFIED BY")
		} else {
			w.keyword("WITH PASSWORD")
		}
		w.space()
		writeStringLiteral(w, s.password)
	}
	return w.finish()
}

// DropUserStatement is a buildable DROP USER.
type DropUserStatement struct {
	builder  QueryBuilder
	name     string
	ifExists bool
}

// NewDropUserStatement creates an empty DROP USER statement for the given
// builder.
func NewDropUserStatement(builder QueryBuilder) *DropUserStatement {
	return &DropUserStatement{builder: builder}
}

// Name sets the user name.
func (s *DropUserStatement) Name(name string) (*DropUserStatement, error) {
	trimmed, err := validateName("Username", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	return s, nil
}

// IfExists adds IF EXISTS.
func (s *DropUserStatement) IfExists() *DropUserStatement {
	s.ifExists = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *DropUserStatement) Take() DropUserStatement {
	out := *s
	*s = DropUserStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *DropUserStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *DropUserStatement) BuildAny(builder QueryBuilder) (string, Values) {
	w := newSQLWriter(builderDialect(builder))
	w.keyword("DROP USER")
	if s.ifExists {
		w.keyword("IF EXISTS")
	}
	w.space()
	writeAccount(w, s.name)
	return w.finish()
}

// AlterUserStatement is a buildable ALTER USER (password change).
type AlterUserStatement struct {
	builder  QueryBuilder
	name     string
	password string
}

// NewAlterUserStatement creates an empty ALTER USER statement for the given
// builder.
func NewAlterUserStatement(builder QueryBuilder) *AlterUserStatement {
	return &AlterUserStatement{builder: builder}
}

// Name sets the user name.
func (s *AlterUserStatement) Name(name string) (*AlterUserStatement, error) {
	trimmed, err := validateName("Username", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	return s, nil
}

// Password sets the new password.
func (s *AlterUserStatement) Password(password string) (*AlterUserStatement, error) {
	trimmed, err := validateName("Password", password)
	if err != nil {
		return s, err
	}
	s.password = trimmed
	return s, nil
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *AlterUserStatement) Take() AlterUserStatement {
	out := *s
	*s = AlterUserStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *AlterUserStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *AlterUserStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	w := newSQLWriter(dialect)
	w.keyword("ALTER USER")
	w.space()
	writeAccount(w, s.name)
	if s.password != "" {
		if dialect == DialectMySQL {
			w.keyword("IDENTIFIED BY")
		} else {
			w.keyword("WITH PASSWORD")
		}
		w.space()
		writeStringLiteral(w, s.password)
	}
	return w.finish()
}

// RenameUserStatement is a buildable user rename. Postgres renders
// `ALTER USER "old" RENAME TO "new"`, MySQL
// `RENAME USER 'old'@'%' TO 'new'@'%'`; SQLite panics.
type RenameUserStatement struct {
	builder QueryBuilder
	from    string
	to      string
}

// NewRenameUserStatement creates an empty rename statement for the given
// builder.
func NewRenameUserStatement(builder QueryBuilder) *RenameUserStatement {
	return &RenameUserStatement{builder: builder}
}

// From sets the current user name.
func (s *RenameUserStatement) From(name string) (*RenameUserStatement, error) {
	trimmed, err := validateName("Username", name)
	if err != nil {
		return s, err
	}
	s.from = trimmed
	return s, nil
}

// To sets the new user name.
func (s *RenameUserStatement) To(name string) (*RenameUserStatement, error) {
	trimmed, err := validateName("Username", name)
	if err != nil {
		return s, err
	}
	s.to = trimmed
	return s, nil
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *RenameUserStatement) Take() RenameUserStatement {
	out := *s
	*s = RenameUserStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *RenameUserStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *RenameUserStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if dialect == DialectSQLite {
		panic("SQLite does not support renaming users")
	}
	w := newSQLWriter(dialect)
	if dialect == DialectMySQL {
		w.keyword("RENAME USER")
		w.space()
		writeAccount(w, s.from)
		w.keyword("TO")
		w.space()
		writeAccount(w, s.to)
	} else {
		w.keyword("ALTER USER")
		w.space()
		writeAccount(w, s.from)
		w.keyword("RENAME TO")
		w.space()
		writeAccount(w, s.to)
	}
	return w.finish()
}

// CreateRoleStatement is a buildable CREATE ROLE.
type CreateRoleStatement struct {
	builder QueryBuilder
	name    string
}

// NewCreateRoleStatement creates an empty CREATE ROLE statement for the
// given builder.
func NewCreateRoleStatement(builder QueryBuilder) *CreateRoleStatement {
	return &CreateRoleStatement{builder: builder}
}

// Name sets the role name.
func (s *CreateRoleStatement) Name(name string) (*CreateRoleStatement, error) {
	trimmed, err := validateName("Role name", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	return s, nil
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *CreateRoleStatement) Take() CreateRoleStatement {
	out := *s
	*s = CreateRoleStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *CreateRoleStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *CreateRoleStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireRoles(dialect)
	w := newSQLWriter(dialect)
	w.keyword("CREATE ROLE")
	w.space()
	writeRole(w, s.name)
	return w.finish()
}

// DropRoleStatement is a buildable DROP ROLE.
type DropRoleStatement struct {
	builder  QueryBuilder
	name     string
	ifExists bool
}

// NewDropRoleStatement creates an empty DROP ROLE statement for the given
// builder.
func NewDropRoleStatement(builder QueryBuilder) *DropRoleStatement {
	return &DropRoleStatement{builder: builder}
}

// Name sets the role name.
func (s *DropRoleStatement) Name(name string) (*DropRoleStatement, error) {
	trimmed, err := validateName("Role name", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	return s, nil
}

// IfExists adds IF EXISTS.
func (s *DropRoleStatement) IfExists() *DropRoleStatement {
	s.ifExists = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *DropRoleStatement) Take() DropRoleStatement {
	out := *s
	*s = DropRoleStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *DropRoleStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *DropRoleStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireRoles(dialect)
	w := newSQLWriter(dialect)
	w.keyword("DROP ROLE")
	if s.ifExists {
		w.keyword("IF EXISTS")
	}
	w.space()
	writeRole(w, s.name)
	return w.finish()
}

// AlterRoleStatement is a buildable role rename (Postgres/CockroachDB only).
type AlterRoleStatement struct {
	builder  QueryBuilder
	name     string
	renameTo string
}

// NewAlterRoleStatement creates an empty ALTER ROLE statement for the given
// builder.
func NewAlterRoleStatement(builder QueryBuilder) *AlterRoleStatement {
	return &AlterRoleStatement{builder: builder}
}

// Name sets the role name.
func (s *AlterRoleStatement) Name(name string) (*AlterRoleStatement, error) {
	trimmed, err := validateName("Role name", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	return s, nil
}

// RenameTo sets the new role name.
func (s *AlterRoleStatement) RenameTo(name string) (*AlterRoleStatement, error) {
	trimmed, err := validateName("Role name", name)
	if err != nil {
		return s, err
	}
	s.renameTo = trimmed
	return s, nil
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *AlterRoleStatement) Take() AlterRoleStatement {
	out := *s
	*s = AlterRoleStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *AlterRoleStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *AlterRoleStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireRoles(dialect)
	if dialect == DialectMySQL {
		panic("MySQL does not support ALTER ROLE")
	}
	w := newSQLWriter(dialect)
	w.keyword("ALTER ROLE")
	w.space()
	writeRole(w, s.name)
	w.keyword("RENAME TO")
	w.space()
	writeRole(w, s.renameTo)
	return w.finish()
}

// SetRoleStatement is a buildable SET ROLE for the current session.
type SetRoleStatement struct {
	builder QueryBuilder
	name    string
	none    bool
}

// NewSetRoleStatement creates an empty SET ROLE statement for the given
// builder.
func NewSetRoleStatement(builder QueryBuilder) *SetRoleStatement {
	return &SetRoleStatement{builder: builder}
}

// Name sets the role to assume.
func (s *SetRoleStatement) Name(name string) (*SetRoleStatement, error) {
	trimmed, err := validateName("Role name", name)
	if err != nil {
		return s, err
	}
	s.name = trimmed
	s.none = false
	return s, nil
}

// None resets to SET ROLE NONE.
func (s *SetRoleStatement) None() *SetRoleStatement {
	s.none = true
	s.name = ""
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *SetRoleStatement) Take() SetRoleStatement {
	out := *s
	*s = SetRoleStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *SetRoleStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *SetRoleStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireRoles(dialect)
	w := newSQLWriter(dialect)
	w.keyword("SET ROLE")
	w.space()
	if s.none {
		w.write("NONE")
	} else {
		writeRole(w, s.name)
	}
	return w.finish()
}

// ResetRoleStatement is a buildable RESET ROLE (Postgres/CockroachDB only).
type ResetRoleStatement struct {
	builder QueryBuilder
}

// NewResetRoleStatement creates a RESET ROLE statement for the given
// builder.
func NewResetRoleStatement(builder QueryBuilder) *ResetRoleStatement {
	return &ResetRoleStatement{builder: builder}
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *ResetRoleStatement) Take() ResetRoleStatement {
	out := *s
	*s = ResetRoleStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *ResetRoleStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *ResetRoleStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireRoles(dialect)
	if dialect == DialectMySQL {
		panic("MySQL does not support RESET ROLE")
	}
	w := newSQLWriter(dialect)
	w.keyword("RESET ROLE")
	return w.finish()
}

// SetDefaultRoleStatement sets the default role(s) of a user. Postgres
// renders `ALTER ROLE "user" SET ROLE …`, MySQL
// `SET DEFAULT ROLE … TO 'user'@'%'`.
type SetDefaultRoleStatement struct {
	builder QueryBuilder
	user    string
	roles   []string
	none    bool
}

// NewSetDefaultRoleStatement creates an empty statement for the given
// builder.
func NewSetDefaultRoleStatement(builder QueryBuilder) *SetDefaultRoleStatement {
	return &SetDefaultRoleStatement{builder: builder}
}

// User sets the target user.
func (s *SetDefaultRoleStatement) User(name string) (*SetDefaultRoleStatement, error) {
	trimmed, err := validateName("Username", name)
	if err != nil {
		return s, err
	}
	s.user = trimmed
	return s, nil
}

// Roles sets the default roles. Each role name is validated.
func (s *SetDefaultRoleStatement) Roles(names ...string) (*SetDefaultRoleStatement, error) {
	roles := make([]string, 0, len(names))
	for _, name := range names {
		trimmed, err := validateName("Role name", name)
		if err != nil {
			return s, err
		}
		roles = append(roles, trimmed)
	}
	s.roles = roles
	s.none = false
	return s, nil
}

// None clears the default role list.
func (s *SetDefaultRoleStatement) None() *SetDefaultRoleStatement {
	s.none = true
	s.roles = nil
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state, keeping the builder.
func (s *SetDefaultRoleStatement) Take() SetDefaultRoleStatement {
	out := *s
	*s = SetDefaultRoleStatement{builder: s.builder}
	return out
}

// Build compiles the statement for the bound builder.
func (s *SetDefaultRoleStatement) Build() (string, Values) { return s.BuildAny(s.builder) }

// BuildAny compiles the statement for the given builder's dialect.
func (s *SetDefaultRoleStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireRoles(dialect)
	w := newSQLWriter(dialect)
	if dialect == DialectMySQL {
		w.keyword("SET DEFAULT ROLE")
		w.space()
		if s.none {
			w.write("NONE")
		} else {
			for i, role := range s.roles {
				if i > 0 {
					w.write(", ")
				}
				writeRole(w, role)
			}
		}
		w.keyword("TO")
		w.space()
		writeAccount(w, s.user)
	} else {
		w.keyword("ALTER ROLE")
		w.space()
		writeAccount(w, s.user)
		w.keyword("SET ROLE")
		w.space()
		if s.none {
			w.write("NONE")
		} else {
			for i, role := range s.roles {
				if i > 0 {
					w.write(", ")
				}
				writeRole(w, role)
			}
		}
	}
	return w.finish()
}
