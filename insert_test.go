package squill

import (
	"testing"

	"github.com/squill-db/squill/internal/testutil"
)

func TestInsertStatement(t *testing.T) {
	t.Parallel()
	t.Run("single row", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewInsertStatement().
			IntoTable("users").
			Columns("name", "age").
			Values("alice", int64(30))
		tt.wantQuery = "INSERT INTO users (name, age) VALUES ($1, $2)"
		tt.wantArgs = []any{"alice", int64(30)}
		tt.assert(t)
	})
	t.Run("multi row", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewInsertStatement().
			IntoTable("users").
			Columns("name", "age").
			Values("alice", int64(30)).
			Values("bob", nil)
		tt.wantQuery = "INSERT INTO users (name, age) VALUES ($1, $2), ($3, $4)"
		tt.wantArgs = []any{"alice", int64(30), "bob", nil}
		tt.assert(t)
	})
	t.Run("mysql placeholders", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.builder = NewMySQLQueryBuilder()
		tt.item = NewInsertStatement().
			IntoTable("users").
			Columns("name").
			Values("alice")
		tt.wantQuery = "INSERT INTO users (name) VALUES (?)"
		tt.wantArgs = []any{"alice"}
		tt.assert(t)
	})
	t.Run("from select", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewInsertStatement().
			IntoTable("archive").
			Columns("id", "name").
			FromSelect(NewSelectStatement().
				Columns("id", "name").
				FromTable("users").
				Where(Col("deleted").Eq(true)))
		tt.wantQuery = "INSERT INTO archive (id, name) SELECT id, name FROM users WHERE deleted = $1"
		tt.wantArgs = []any{true}
		tt.assert(t)
	})
	t.Run("schema qualified target", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewInsertStatement().
			Into(SchemaTable("app", "users")).
			Columns("name").
			Values("alice")
		tt.wantQuery = "INSERT INTO app.users (name) VALUES ($1)"
		tt.wantArgs = []any{"alice"}
		tt.assert(t)
	})
}

func TestInsertRowWidthPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal(testutil.Callers(), "expected panic but got none")
		}
	}()
	NewInsertStatement().
		IntoTable("users").
		Columns("name", "age").
		Values("alice")
}

func TestInsertTake(t *testing.T) {
	t.Parallel()
	stmt := NewInsertStatement().IntoTable("users").Columns("name").Values("alice")
	taken := stmt.Take()
	if diff := testutil.Diff(*stmt, InsertStatement{}); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	query, values := taken.BuildAny(NewPostgresQueryBuilder())
	if diff := testutil.Diff(query, "INSERT INTO users (name) VALUES ($1)"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	if diff := testutil.Diff(values.Args(), []any{"alice"}); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
}
