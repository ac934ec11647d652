package squill

// requireMySQLMaintenance panics on dialects without the MySQL table
// maintenance statements.
func requireMySQLMaintenance(dialect, statement string) {
	if dialect != DialectMySQL {
		panic(dialectLabel(dialect) + " does not support " + statement)
	}
}

// OptimizeTableStatement is a buildable OPTIMIZE TABLE (MySQL only).
type OptimizeTableStatement struct {
	tables          []Iden
	noWriteToBinlog bool
	local           bool
}

// NewOptimizeTableStatement creates an empty OPTIMIZE TABLE statement.
func NewOptimizeTableStatement() *OptimizeTableStatement { return &OptimizeTableStatement{} }

// Table appends a table to optimize.
func (s *OptimizeTableStatement) Table(name string) *OptimizeTableStatement {
	s.tables = append(s.tables, Iden(name))
	return s
}

// NoWriteToBinlog adds NO_WRITE_TO_BINLOG.
func (s *OptimizeTableStatement) NoWriteToBinlog() *OptimizeTableStatement {
	s.noWriteToBinlog = true
	s.local = false
	return s
}

// Local adds LOCAL, the NO_WRITE_TO_BINLOG alias.
func (s *OptimizeTableStatement) Local() *OptimizeTableStatement {
	s.local = true
	s.noWriteToBinlog = false
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *OptimizeTableStatement) Take() OptimizeTableStatement {
	out := *s
	*s = OptimizeTableStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *OptimizeTableStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireMySQLMaintenance(dialect, "OPTIMIZE TABLE")
	w := newSQLWriter(dialect)
	w.keyword("OPTIMIZE")
	if s.noWriteToBinlog {
		w.keyword("NO_WRITE_TO_BINLOG")
	}
	if s.local {
		w.keyword("LOCAL")
	}
	w.keyword("TABLE")
	w.space()
	w.idents(s.tables)
	return w.finish()
}

// RepairTableStatement is a buildable REPAIR TABLE (MySQL only).
type RepairTableStatement struct {
	tables          []Iden
	noWriteToBinlog bool
	local           bool
	quick           bool
	extended        bool
	useFrm          bool
}

// NewRepairTableStatement creates an empty REPAIR TABLE statement.
func NewRepairTableStatement() *RepairTableStatement { return &RepairTableStatement{} }

// Table appends a table to repair.
func (s *RepairTableStatement) Table(name string) *RepairTableStatement {
	s.tables = append(s.tables, Iden(name))
	return s
}

// NoWriteToBinlog adds NO_WRITE_TO_BINLOG.
func (s *RepairTableStatement) NoWriteToBinlog() *RepairTableStatement {
	s.noWriteToBinlog = true
	s.local = false
	return s
}

// Local adds LOCAL, the NO_WRITE_TO_BINLOG alias.
func (s *RepairTableStatement) Local() *RepairTableStatement {
	s.local = true
	s.noWriteToBinlog = false
	return s
}

// Quick adds QUICK.
func (s *RepairTableStatement) Quick() *RepairTableStatement {
	s.quick = true
	return s
}

// Extended adds EXTENDED.
func (s *RepairTableStatement) Extended() *RepairTableStatement {
	s.extended = true
	return s
}

// UseFrm adds USE_FRM.
func (s *RepairTableStatement) UseFrm() *RepairTableStatement {
	s.useFrm = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *RepairTableStatement) Take() RepairTableStatement {
	out := *s
	*s = RepairTableStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *RepairTableStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireMySQLMaintenance(dialect, "REPAIR TABLE")
	w := newSQLWriter(dialect)
	w.keyword("REPAIR")
	if s.noWriteToBinlog {
		w.keyword("NO_WRITE_TO_BINLOG")
	}
	if s.local {
		w.keyword("LOCAL")
	}
	w.keyword("TABLE")
	w.space()
	w.idents(s.tables)
	if s.quick {
		w.keyword("QUICK")
	}
	if s.extended {
		w.keyword("EXTENDED")
	}
	if s.useFrm {
		w.keyword("USE_FRM")
	}
	return w.finish()
}

// CheckTableStatement is a buildable CHECK TABLE (MySQL only).
type CheckTableStatement struct {
	tables   []Iden
	quick    bool
	fast     bool
	medium   bool
	extended bool
	changed  bool
}

// NewCheckTableStatement creates an empty CHECK TABLE statement.
func NewCheckTableStatement() *CheckTableStatement { return &CheckTableStatement{} }

// Table appends a table to check.
func (s *CheckTableStatement) Table(name string) *CheckTableStatement {
	s.tables = append(s.tables, Iden(name))
	return s
}

// Quick adds QUICK.
func (s *CheckTableStatement) Quick() *CheckTableStatement {
	s.quick = true
	return s
}

// Fast adds FAST.
func (s *CheckTableStatement) Fast() *CheckTableStatement {
	s.fast = true
	return s
}

// Medium adds MEDIUM.
func (s *CheckTableStatement) Medium() *CheckTableStatement {
	s.medium = true
	return s
}

// Extended adds EXTENDED.
func (s *CheckTableStatement) Extended() *CheckTableStatement {
	s.extended = true
	return s
}

// Changed adds CHANGED.
func (s *CheckTableStatement) Changed() *CheckTableStatement {
	s.changed = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *CheckTableStatement) Take() CheckTableStatement {
	out := *s
	*s = CheckTableStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *CheckTableStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	requireMySQLMaintenance(dialect, "CHECK TABLE")
	w := newSQLWriter(dialect)
	w.keyword("CHECK TABLE")
	w.space()
	w.idents(s.tables)
	if s.quick {
		w.keyword("QUICK")
	}
	if s.fast {
		w.keyword("FAST")
	}
	if s.medium {
		w.keyword("MEDIUM")
	}
	if s.extended {
		w.keyword("EXTENDED")
	}
	if s.changed {
		w.keyword("CHANGED")
	}
	return w.finish()
}

// VacuumStatement is a buildable VACUUM. MySQL has no VACUUM and panics;
// SQLite accepts only the bare form.
type VacuumStatement struct {
	table   Iden
	full    bool
	freeze  bool
	verbose bool
	analyze bool
}

// NewVacuumStatement creates an empty VACUUM statement.
func NewVacuumStatement() *VacuumStatement { return &VacuumStatement{} }

// Table restricts the vacuum to one table.
func (s *VacuumStatement) Table(name string) *VacuumStatement {
	s.table = Iden(name)
	return s
}

// Full adds FULL.
func (s *VacuumStatement) Full() *VacuumStatement {
	s.full = true
	return s
}

// Freeze adds FREEZE.
func (s *VacuumStatement) Freeze() *VacuumStatement {
	s.freeze = true
	return s
}

// Verbose adds VERBOSE.
func (s *VacuumStatement) Verbose() *VacuumStatement {
	s.verbose = true
	return s
}

// Analyze adds ANALYZE.
func (s *VacuumStatement) Analyze() *VacuumStatement {
	s.analyze = true
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *VacuumStatement) Take() VacuumStatement {
	out := *s
	*s = VacuumStatement{}
	return out
}

func (s *VacuumStatement) hasOptions() bool {
	return s.full || s.freeze || s.verbose || s.analyze
}

// BuildAny compiles the statement for the builder's dialect.
func (s *VacuumStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	if dialect == DialectMySQL {
		panic("MySQL does not support VACUUM; use OPTIMIZE TABLE")
	}
	if dialect == DialectSQLite && (s.hasOptions() || s.table != "") {
		panic("SQLite supports only the bare VACUUM statement")
	}
	w := newSQLWriter(dialect)
	w.keyword("VACUUM")
	if s.full {
		w.keyword("FULL")
	}
	if s.freeze {
		w.keyword("FREEZE")
	}
	if s.verbose {
		w.keyword("VERBOSE")
	}
	if s.analyze {
		w.keyword("ANALYZE")
	}
	if s.table != "" {
		w.space()
		w.ident(string(s.table))
	}
	return w.finish()
}

// AnalyzeStatement is a buildable ANALYZE. MySQL renders ANALYZE TABLE.
type AnalyzeStatement struct {
	table Iden
}

// NewAnalyzeStatement creates an empty ANALYZE statement.
func NewAnalyzeStatement() *AnalyzeStatement { return &AnalyzeStatement{} }

// Table sets the table to analyze.
func (s *AnalyzeStatement) Table(name string) *AnalyzeStatement {
	s.table = Iden(name)
	return s
}

// Take returns the current statement value and resets the receiver to its
// new-statement state.
func (s *AnalyzeStatement) Take() AnalyzeStatement {
	out := *s
	*s = AnalyzeStatement{}
	return out
}

// BuildAny compiles the statement for the builder's dialect.
func (s *AnalyzeStatement) BuildAny(builder QueryBuilder) (string, Values) {
	dialect := builderDialect(builder)
	w := newSQLWriter(dialect)
	if dialect == DialectMySQL {
		w.keyword("ANALYZE TABLE")
		w.space()
		w.ident(string(s.table))
		return w.finish()
	}
	w.keyword("ANALYZE")
	if s.table != "" {
		w.space()
		w.ident(string(s.table))
	}
	return w.finish()
}
