package squill

import "testing"

func TestOptimizeTableStatement(t *testing.T) {
	t.Parallel()
	my := NewMySQLQueryBuilder()
	t.Run("multiple tables", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = my
		tt.item = NewOptimizeTableStatement().Table("t1").Table("t2")
		tt.wantQuery = "OPTIMIZE TABLE t1, t2"
		tt.assert(t)
	})
	t.Run("no write to binlog", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = my
		tt.item = NewOptimizeTableStatement().NoWriteToBinlog().Table("t1")
		tt.wantQuery = "OPTIMIZE NO_WRITE_TO_BINLOG TABLE t1"
		tt.assert(t)
	})
	t.Run("local", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = my
		tt.item = NewOptimizeTableStatement().Local().Table("t1")
		tt.wantQuery = "OPTIMIZE LOCAL TABLE t1"
		tt.assert(t)
	})
	t.Run("postgres panics", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewPostgresQueryBuilder()
		tt.item = NewOptimizeTableStatement().Table("t1")
		tt.assertPanic(t, "Postgres does not support OPTIMIZE TABLE")
	})
	t.Run("sqlite panics", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewOptimizeTableStatement().Table("t1")
		tt.assertPanic(t, "SQLite does not support OPTIMIZE TABLE")
	})
}

func TestRepairTableStatement(t *testing.T) {
	t.Parallel()
	my := NewMySQLQueryBuilder()
	t.Run("options follow tables", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = my
		tt.item = NewRepairTableStatement().Table("t1").Table("t2").Quick().Extended().UseFrm()
		tt.wantQuery = "REPAIR TABLE t1, t2 QUICK EXTENDED USE_FRM"
		tt.assert(t)
	})
	t.Run("local before table", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = my
		tt.item = NewRepairTableStatement().Local().Table("t1")
		tt.wantQuery = "REPAIR LOCAL TABLE t1"
		tt.assert(t)
	})
	t.Run("cockroachdb panics", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewCockroachDBQueryBuilder()
		tt.item = NewRepairTableStatement().Table("t1")
		tt.assertPanic(t, "CockroachDB does not support REPAIR TABLE")
	})
}

func TestCheckTableStatement(t *testing.T) {
	t.Parallel()
	my := NewMySQLQueryBuilder()
	t.Run("all options in order", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = my
		tt.item = NewCheckTableStatement().Table("t1").Quick().Fast().Medium().Extended().Changed()
		tt.wantQuery = "CHECK TABLE t1 QUICK FAST MEDIUM EXTENDED CHANGED"
		tt.assert(t)
	})
	t.Run("postgres panics", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewPostgresQueryBuilder()
		tt.item = NewCheckTableStatement().Table("t1")
		tt.assertPanic(t, "Postgres does not support CHECK TABLE")
	})
}

func TestVacuumStatement(t *testing.T) {
	t.Parallel()
	t.Run("bare", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewVacuumStatement()
		tt.wantQuery = "VACUUM"
		tt.assert(t)
	})
	t.Run("postgres options and table", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewVacuumStatement().Full().Freeze().Verbose().Analyze().Table("users")
		tt.wantQuery = "VACUUM FULL FREEZE VERBOSE ANALYZE users"
		tt.assert(t)
	})
	t.Run("sqlite bare only", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewVacuumStatement()
		tt.wantQuery = "VACUUM"
		tt.assert(t)
	})
	t.Run("sqlite rejects options", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewVacuumStatement().Full()
		tt.assertPanic(t, "SQLite supports only the bare VACUUM statement")
	})
	t.Run("cockroachdb renders like postgres", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewCockroachDBQueryBuilder()
		tt.item = NewVacuumStatement().Analyze().Table("users")
		tt.wantQuery = "VACUUM ANALYZE users"
		tt.assert(t)
	})
	t.Run("mysql panics", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewVacuumStatement()
		tt.assertPanic(t, "MySQL does not support VACUUM; use OPTIMIZE TABLE")
	})
}

func TestAnalyzeStatement(t *testing.T) {
	t.Parallel()
	t.Run("postgres", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewAnalyzeStatement().Table("users")
		tt.wantQuery = "ANALYZE users"
		tt.assert(t)
	})
	t.Run("postgres bare", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewAnalyzeStatement()
		tt.wantQuery = "ANALYZE"
		tt.assert(t)
	})
	t.Run("mysql requires table keyword", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewAnalyzeStatement().Table("users")
		tt.wantQuery = "ANALYZE TABLE users"
		tt.assert(t)
	})
	t.Run("sqlite", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewAnalyzeStatement().Table("users")
		tt.wantQuery = "ANALYZE users"
		tt.assert(t)
	})
}
