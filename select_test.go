package squill

import (
	"testing"

	"github.com/squill-db/squill/internal/testutil"
)

func TestSelectStatement(t *testing.T) {
	t.Parallel()
	t.Run("star", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().FromTable("users")
		tt.wantQuery = "SELECT * FROM users"
		tt.assert(t)
	})
	t.Run("columns and aliases", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().
			Columns("id", "name").
			ColumnAs(Col("created_at"), "joined").
			ExprAs("COUNT(*)", "total").
			FromTable("users")
		tt.wantQuery = "SELECT id, name, created_at AS joined, COUNT(*) AS total FROM users"
		tt.assert(t)
	})
	t.Run("distinct", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().Distinct().Columns("name").FromTable("users")
		tt.wantQuery = "SELECT DISTINCT name FROM users"
		tt.assert(t)
	})
	t.Run("schema qualified table", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().From(SchemaTable("public", "users"))
		tt.wantQuery = "SELECT * FROM public.users"
		tt.assert(t)
	})
	t.Run("database schema table", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().From(DatabaseSchemaTable("main", "public", "users"))
		tt.wantQuery = "SELECT * FROM main.public.users"
		tt.assert(t)
	})
	t.Run("aliased table", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().From(Table("users").As("u"))
		tt.wantQuery = "SELECT * FROM users AS u"
		tt.assert(t)
	})
	t.Run("aliased schema table", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().From(SchemaTable("public", "users").As("u"))
		tt.wantQuery = "SELECT * FROM public.users AS u"
		tt.assert(t)
	})
	t.Run("subquery table", func(t *testing.T) {
		t.Parallel()
		sub := NewSelectStatement().
			Columns("user_id").
			FromTable("posts").
			Where(Col("published").Eq(true))
		var tt TestTable
		tt.item = NewSelectStatement().From(SubQueryTable(sub, "p"))
		tt.wantQuery = "SELECT * FROM (SELECT user_id FROM posts WHERE published = $1) AS p"
		tt.wantArgs = []any{true}
		tt.assert(t)
	})
	t.Run("group by and having", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().
			Columns("name").
			ExprAs("COUNT(*)", "n").
			FromTable("users").
			GroupBy(Col("name")).
			Having(Col("name").IsNotNull())
		tt.wantQuery = "SELECT name, COUNT(*) AS n FROM users GROUP BY name HAVING name IS NOT NULL"
		tt.assert(t)
	})
	t.Run("order limit offset bound as parameters", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Col("age").Gt(int64(18))).
			OrderBy(Col("name")).
			OrderByDesc(TableCol("users", "id")).
			Limit(10).
			Offset(20)
		tt.wantQuery = "SELECT * FROM users WHERE age > $1 ORDER BY name ASC, users.id DESC LIMIT $2 OFFSET $3"
		tt.wantArgs = []any{int64(18), uint64(10), uint64(20)}
		tt.assert(t)
	})
	t.Run("typed ordering", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = OrderByField(NewSelectStatement().FromTable("users"), userName.Desc())
		tt.wantQuery = "SELECT * FROM users ORDER BY name DESC"
		tt.assert(t)
	})
	t.Run("mysql placeholders and quoting", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewSelectStatement().
			Column(Col("Name")).
			FromTable("Users").
			Where(Col("age").Gt(int64(18))).
			Limit(5)
		tt.wantQuery = "SELECT `Name` FROM `Users` WHERE age > ? LIMIT ?"
		tt.wantArgs = []any{int64(18), uint64(5)}
		tt.assert(t)
	})
	t.Run("sqlite placeholders", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewSQLiteQueryBuilder()
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Col("id").Eq(int64(1)))
		tt.wantQuery = "SELECT * FROM users WHERE id = ?"
		tt.wantArgs = []any{int64(1)}
		tt.assert(t)
	})
	t.Run("cockroachdb follows postgres", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewCockroachDBQueryBuilder()
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Col("id").Eq(int64(1)))
		tt.wantQuery = "SELECT * FROM users WHERE id = $1"
		tt.wantArgs = []any{int64(1)}
		tt.assert(t)
	})
	t.Run("scalar subquery comparison", func(t *testing.T) {
		t.Parallel()
		max := NewSelectStatement().Expr("MAX(age)").FromTable("users")
		var tt TestTable
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Col("age").Eq(max))
		tt.wantQuery = "SELECT * FROM users WHERE age = (SELECT MAX(age) FROM users)"
		tt.assert(t)
	})
}

func TestSelectTake(t *testing.T) {
	t.Parallel()
	stmt := NewSelectStatement().Columns("id").FromTable("users").Limit(1)
	taken := stmt.Take()
	if diff := testutil.Diff(*stmt, SelectStatement{}); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	query, _ := taken.BuildAny(NewPostgresQueryBuilder())
	if diff := testutil.Diff(query, "SELECT id FROM users LIMIT $1"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	query, values := stmt.BuildAny(NewPostgresQueryBuilder())
	if diff := testutil.Diff(query, "SELECT *"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	if diff := testutil.Diff(len(values), 0); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
}
