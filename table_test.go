package squill

import "testing"

func TestCreateTableStatement(t *testing.T) {
	t.Parallel()
	t.Run("postgres", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewCreateTableStatement().
			Name("users").
			IfNotExists().
			Column(Column("id", ColBigInt()).AutoIncrement().PrimaryKey()).
			Column(Column("name", ColVarchar(255)).NotNull()).
			Column(Column("email", ColText()).Unique()).
			Column(Column("created_at", ColTimestamp()).NotNull().Default("CURRENT_TIMESTAMP"))
		tt.wantQuery = "CREATE TABLE IF NOT EXISTS users (" +
			"id BIGSERIAL PRIMARY KEY, " +
			"name VARCHAR(255) NOT NULL, " +
			"email TEXT UNIQUE, " +
			"created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)"
		tt.assert(t)
	})
	t.Run("mysql", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewCreateTableStatement().
			Name("users").
			Column(Column("id", ColBigInt()).AutoIncrement().PrimaryKey()).
			Column(Column("name", ColVarchar(255)).NotNull()).
			Column(Column("created_at", ColTimestamp()))
		tt.wantQuery = "CREATE TABLE users (" +
			"id BIGINT PRIMARY KEY AUTO_INCREMENT, " +
			"name VARCHAR(255) NOT NULL, " +
			"created_at DATETIME)"
		tt.assert(t)
	})
	t.Run("sqlite", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewCreateTableStatement().
			Name("users").
			Column(Column("id", ColBigInt()).AutoIncrement()).
			Column(Column("name", ColVarchar(255)).NotNull())
		tt.wantQuery = "CREATE TABLE users (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"name TEXT NOT NULL)"
		tt.assert(t)
	})
	t.Run("cockroachdb serial", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewCockroachDBQueryBuilder()
		tt.item = NewCreateTableStatement().
			Name("events").
			Column(Column("id", ColInt()).AutoIncrement().PrimaryKey()).
			Column(Column("payload", ColBytes()))
		tt.wantQuery = "CREATE TABLE events (id SERIAL PRIMARY KEY, payload BYTEA)"
		tt.assert(t)
	})
	t.Run("temporary with composite key", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewCreateTableStatement().
			Name("tags").
			Temporary().
			Column(Column("post_id", ColBigInt()).NotNull()).
			Column(Column("tag", ColText()).NotNull()).
			PrimaryKey("post_id", "tag")
		tt.wantQuery = "CREATE TEMPORARY TABLE tags (" +
			"post_id BIGINT NOT NULL, " +
			"tag TEXT NOT NULL, " +
			"PRIMARY KEY (post_id, tag))"
		tt.assert(t)
	})
	t.Run("column type mapping", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewCreateTableStatement().
			Name("samples").
			Column(Column("flag", ColBool())).
			Column(Column("tiny", ColTinyInt())).
			Column(Column("small", ColSmallInt())).
			Column(Column("ratio", ColFloat())).
			Column(Column("score", ColDouble())).
			Column(Column("payload", ColBytes())).
			Column(Column("uid", ColUUID()))
		tt.wantQuery = "CREATE TABLE samples (" +
			"flag BOOLEAN, " +
			"tiny TINYINT, " +
			"small SMALLINT, " +
			"ratio FLOAT, " +
			"score DOUBLE, " +
			"payload BLOB, " +
			"uid CHAR(36))"
		tt.assert(t)
	})
}

func TestDropTableStatement(t *testing.T) {
	t.Parallel()
	t.Run("multiple tables cascade", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewDropTableStatement().
			Name("users").
			Name("posts").
			IfExists().
			Cascade()
		tt.wantQuery = "DROP TABLE IF EXISTS users, posts CASCADE"
		tt.assert(t)
	})
	t.Run("restrict", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewDropTableStatement().Name("users").Restrict()
		tt.wantQuery = "DROP TABLE users RESTRICT"
		tt.assert(t)
	})
	t.Run("mysql renders cascade", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewDropTableStatement().Name("users").Cascade()
		tt.wantQuery = "DROP TABLE users CASCADE"
		tt.assert(t)
	})
	t.Run("sqlite rejects cascade", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewDropTableStatement().Name("users").Cascade()
		tt.assertPanic(t, "SQLite does not support CASCADE or RESTRICT for DROP TABLE")
	})
}

func TestTruncateTableStatement(t *testing.T) {
	t.Parallel()
	t.Run("postgres with options", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewTruncateTableStatement().
			Name("users").
			RestartIdentity().
			Cascade()
		tt.wantQuery = "TRUNCATE TABLE users RESTART IDENTITY CASCADE"
		tt.assert(t)
	})
	t.Run("mysql", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewTruncateTableStatement().Name("users")
		tt.wantQuery = "TRUNCATE TABLE users"
		tt.assert(t)
	})
	t.Run("sqlite degrades to delete", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewTruncateTableStatement().Name("users")
		tt.wantQuery = "DELETE FROM users"
		tt.assert(t)
	})
	t.Run("sqlite rejects options", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewTruncateTableStatement().Name("users").Cascade()
		tt.assertPanic(t, "SQLite does not support TRUNCATE options")
	})
	t.Run("mysql rejects options", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewTruncateTableStatement().Name("users").RestartIdentity()
		tt.assertPanic(t, "MySQL does not support TRUNCATE options")
	})
}
