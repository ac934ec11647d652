package squill

import (
	"testing"

	"github.com/squill-db/squill/internal/testutil"
)

func TestQueryFacade(t *testing.T) {
	t.Parallel()
	builder := NewPostgresQueryBuilder()
	t.Run("select", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = Query.Select().Columns("id").FromTable("users")
		tt.wantQuery = "SELECT id FROM users"
		tt.assert(t)
	})
	t.Run("insert", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = Query.InsertInto("users").Columns("name").Values("alice")
		tt.wantQuery = "INSERT INTO users (name) VALUES ($1)"
		tt.wantArgs = []any{"alice"}
		tt.assert(t)
	})
	t.Run("update", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = Query.Update("users").Set("name", "bob")
		tt.wantQuery = "UPDATE users SET name = $1"
		tt.wantArgs = []any{"bob"}
		tt.assert(t)
	})
	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = Query.DeleteFrom("sessions")
		tt.wantQuery = "DELETE FROM sessions"
		tt.assert(t)
	})
	t.Run("ddl", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = Query.DropTable("users").IfExists()
		tt.wantQuery = "DROP TABLE IF EXISTS users"
		tt.assert(t)
	})
	t.Run("maintenance", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = Query.OptimizeTable("t1", "t2")
		tt.wantQuery = "OPTIMIZE TABLE t1, t2"
		tt.assert(t)
	})
	t.Run("dcl binds builder", func(t *testing.T) {
		t.Parallel()
		stmt, err := Query.CreateRole(builder).Name("auditor")
		if err != nil {
			t.Fatal(testutil.Callers(), err)
		}
		query, _ := stmt.Build()
		if diff := testutil.Diff(query, `CREATE ROLE "auditor"`); diff != "" {
			t.Error(testutil.Callers(), diff)
		}
	})
}
