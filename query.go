package squill

// queryFacade groups the statement constructors under one value so call
// sites read as Query.Select(), Query.InsertInto("users") and so on.
type queryFacade struct{}

// Query is the statement construction entry point.
var Query queryFacade

// Select creates an empty select statement.
func (queryFacade) Select() *SelectStatement { return NewSelectStatement() }

// InsertInto creates an insert statement targeting the named table.
func (queryFacade) InsertInto(table string) *InsertStatement {
	return NewInsertStatement().IntoTable(table)
}

// Update creates an update statement targeting the named table.
func (queryFacade) Update(table string) *UpdateStatement {
	return NewUpdateStatement().TableName(table)
}

// DeleteFrom creates a delete statement targeting the named table.
func (queryFacade) DeleteFrom(table string) *DeleteStatement {
	return NewDeleteStatement().FromTable(table)
}

// CreateTable creates a CREATE TABLE statement for the named table.
func (queryFacade) CreateTable(name string) *CreateTableStatement {
	return NewCreateTableStatement().Name(name)
}

// DropTable creates a DROP TABLE statement for the named table.
func (queryFacade) DropTable(name string) *DropTableStatement {
	return NewDropTableStatement().Name(name)
}

// TruncateTable creates a TRUNCATE TABLE statement for the named table.
func (queryFacade) TruncateTable(name string) *TruncateTableStatement {
	return NewTruncateTableStatement().Name(name)
}

// CreateIndex creates a CREATE INDEX statement.
func (queryFacade) CreateIndex(name string) *CreateIndexStatement {
	return NewCreateIndexStatement().Name(name)
}

// DropIndex creates a DROP INDEX statement.
func (queryFacade) DropIndex(name string) *DropIndexStatement {
	return NewDropIndexStatement().Name(name)
}

// CreateView creates a CREATE VIEW statement.
func (queryFacade) CreateView(name string) *CreateViewStatement {
	return NewCreateViewStatement().Name(name)
}

// DropView creates a DROP VIEW statement.
func (queryFacade) DropView(name string) *DropViewStatement {
	return NewDropViewStatement().Name(name)
}

// CreateMaterializedView creates a CREATE MATERIALIZED VIEW statement.
func (queryFacade) CreateMaterializedView(name string) *CreateMaterializedViewStatement {
	return NewCreateMaterializedViewStatement().Name(name)
}

// DropMaterializedView creates a DROP MATERIALIZED VIEW statement.
func (queryFacade) DropMaterializedView(name string) *DropMaterializedViewStatement {
	return NewDropMaterializedViewStatement().Name(name)
}

// RefreshMaterializedView creates a REFRESH MATERIALIZED VIEW statement.
func (queryFacade) RefreshMaterializedView(name string) *RefreshMaterializedViewStatement {
	return NewRefreshMaterializedViewStatement().Name(name)
}

// CreateProcedure creates a CREATE PROCEDURE statement.
func (queryFacade) CreateProcedure(name string) *CreateProcedureStatement {
	return NewCreateProcedureStatement().Name(name)
}

// DropProcedure creates a DROP PROCEDURE statement.
func (queryFacade) DropProcedure(name string) *DropProcedureStatement {
	return NewDropProcedureStatement().Name(name)
}

// CreateUser creates a CREATE USER statement bound to the builder.
func (queryFacade) CreateUser(builder QueryBuilder) *CreateUserStatement {
	return NewCreateUserStatement(builder)
}

// DropUser creates a DROP USER statement bound to the builder.
func (queryFacade) DropUser(builder QueryBuilder) *DropUserStatement {
	return NewDropUserStatement(builder)
}

// AlterUser creates an ALTER USER statement bound to the builder.
func (queryFacade) AlterUser(builder QueryBuilder) *AlterUserStatement {
	return NewAlterUserStatement(builder)
}

// RenameUser creates a user rename statement bound to the builder.
func (queryFacade) RenameUser(builder QueryBuilder) *RenameUserStatement {
	return NewRenameUserStatement(builder)
}

// CreateRole creates a CREATE ROLE statement bound to the builder.
func (queryFacade) CreateRole(builder QueryBuilder) *CreateRoleStatement {
	return NewCreateRoleStatement(builder)
}

// DropRole creates a DROP ROLE statement bound to the builder.
func (queryFacade) DropRole(builder QueryBuilder) *DropRoleStatement {
	return NewDropRoleStatement(builder)
}

// AlterRole creates an ALTER ROLE statement bound to the builder.
func (queryFacade) AlterRole(builder QueryBuilder) *AlterRoleStatement {
	return NewAlterRoleStatement(builder)
}

// SetRole creates a SET ROLE statement bound to the builder.
func (queryFacade) SetRole(builder QueryBuilder) *SetRoleStatement {
	return NewSetRoleStatement(builder)
}

// ResetRole creates a RESET ROLE statement bound to the builder.
func (queryFacade) ResetRole(builder QueryBuilder) *ResetRoleStatement {
	return NewResetRoleStatement(builder)
}

// SetDefaultRole creates a default-role statement bound to the builder.
func (queryFacade) SetDefaultRole(builder QueryBuilder) *SetDefaultRoleStatement {
	return NewSetDefaultRoleStatement(builder)
}

// Grant creates a GRANT statement bound to the builder.
func (queryFacade) Grant(builder QueryBuilder) *GrantStatement {
	return NewGrantStatement(builder)
}

// Revoke creates a REVOKE statement bound to the builder.
func (queryFacade) Revoke(builder QueryBuilder) *RevokeStatement {
	return NewRevokeStatement(builder)
}

// OptimizeTable creates an OPTIMIZE TABLE statement.
func (queryFacade) OptimizeTable(tables ...string) *OptimizeTableStatement {
	s := NewOptimizeTableStatement()
	for _, table := range tables {
		s.Table(table)
	}
	return s
}

// RepairTable creates a REPAIR TABLE statement.
func (queryFacade) RepairTable(tables ...string) *RepairTableStatement {
	s := NewRepairTableStatement()
	for _, table := range tables {
		s.Table(table)
	}
	return s
}

// CheckTable creates a CHECK TABLE statement.
func (queryFacade) CheckTable(tables ...string) *CheckTableStatement {
	s := NewCheckTableStatement()
	for _, table := range tables {
		s.Table(table)
	}
	return s
}

// Vacuum creates a VACUUM statement.
func (queryFacade) Vacuum() *VacuumStatement { return NewVacuumStatement() }

// Analyze creates an ANALYZE statement.
func (queryFacade) Analyze() *AnalyzeStatement { return NewAnalyzeStatement() }
