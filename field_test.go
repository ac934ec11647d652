package squill

import (
	"testing"

	"github.com/squill-db/squill/internal/testutil"
)

type userTable struct{}

func (userTable) TableName() string { return "users" }

type postTable struct{}

func (postTable) TableName() string { return "posts" }

var (
	userID   = NewField[userTable, int64]("id")
	userName = NewField[userTable, string]("name")
	userAge  = NewField[userTable, int64]("age")

	postID     = NewField[postTable, int64]("id")
	postUserID = NewField[postTable, int64]("user_id")
	postTitle  = NewField[postTable, string]("title")
)

func TestFieldMetadata(t *testing.T) {
	t.Parallel()
	if diff := testutil.Diff(userID.ColumnName(), "id"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	nested := NewField[userTable, string]("profile", "bio")
	if diff := testutil.Diff(nested.ColumnName(), "profile.bio"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	if diff := testutil.Diff(nested.Path(), []string{"profile", "bio"}); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
}

func TestOrderingField(t *testing.T) {
	t.Parallel()
	if diff := testutil.Diff(userName.Asc().ToSQL(), "name ASC"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
	if diff := testutil.Diff(userAge.Desc().ToSQL(), "age DESC"); diff != "" {
		t.Error(testutil.Callers(), diff)
	}
}

func TestTypedLookups(t *testing.T) {
	t.Parallel()
	tests := []struct {
		description string
		lookup      Lookup[userTable]
		wantQuery   string
		wantArgs    []any
	}{{
		description: "Eq",
		lookup:      userID.Eq(7),
		wantQuery:   "SELECT * FROM users WHERE users.id = $1",
		wantArgs:    []any{int64(7)},
	}, {
		description: "Ne",
		lookup:      userName.Ne("bob"),
		wantQuery:   "SELECT * FROM users WHERE users.name <> $1",
		wantArgs:    []any{"bob"},
	}, {
		description: "Gt",
		lookup:      userAge.Gt(18),
		wantQuery:   "SELECT * FROM users WHERE users.age > $1",
		wantArgs:    []any{int64(18)},
	}, {
		description: "Le",
		lookup:      userAge.Le(65),
		wantQuery:   "SELECT * FROM users WHERE users.age <= $1",
		wantArgs:    []any{int64(65)},
	}, {
		description: "In",
		lookup:      userID.In(1, 2, 3),
		wantQuery:   "SELECT * FROM users WHERE users.id IN ($1, $2, $3)",
		wantArgs:    []any{int64(1), int64(2), int64(3)},
	}, {
		description: "Between",
		lookup:      userAge.Between(18, 65),
		wantQuery:   "SELECT * FROM users WHERE users.age BETWEEN $1 AND $2",
		wantArgs:    []any{int64(18), int64(65)},
	}, {
		description: "Like",
		lookup:      userName.Like("a%"),
		wantQuery:   "SELECT * FROM users WHERE users.name LIKE $1",
		wantArgs:    []any{"a%"},
	}, {
		description: "IsNull",
		lookup:      userName.IsNull(),
		wantQuery:   "SELECT * FROM users WHERE users.name IS NULL",
	}, {
		description: "IsNotNull",
		lookup:      userName.IsNotNull(),
		wantQuery:   "SELECT * FROM users WHERE users.name IS NOT NULL",
	}, {
		description: "And",
		lookup:      userAge.Ge(18).And(userName.Like("a%")),
		wantQuery:   "SELECT * FROM users WHERE (users.age >= $1 AND users.name LIKE $2)",
		wantArgs:    []any{int64(18), "a%"},
	}, {
		description: "Or",
		lookup:      userID.Eq(1).Or(userID.Eq(2)),
		wantQuery:   "SELECT * FROM users WHERE (users.id = $1 OR users.id = $2)",
		wantArgs:    []any{int64(1), int64(2)},
	}, {
		description: "Not",
		lookup:      userName.Eq("bob").Not(),
		wantQuery:   "SELECT * FROM users WHERE NOT (users.name = $1)",
		wantArgs:    []any{"bob"},
	}}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.description, func(t *testing.T) {
			t.Parallel()
			stmt := Filter(NewSelectStatement().FromTable("users"), tt.lookup)
			TestTable{
				item:      stmt,
				wantQuery: tt.wantQuery,
				wantArgs:  tt.wantArgs,
			}.assert(t)
		})
	}
}

func TestUntypedConds(t *testing.T) {
	t.Parallel()
	t.Run("column to column", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(TableCol("users", "id").EqCol(TableCol("posts", "user_id")))
		tt.wantQuery = "SELECT * FROM users WHERE users.id = posts.user_id"
		tt.assert(t)
	})
	t.Run("not in", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Col("status").NotIn("banned", "deleted"))
		tt.wantQuery = "SELECT * FROM users WHERE status NOT IN ($1, $2)"
		tt.wantArgs = []any{"banned", "deleted"}
		tt.assert(t)
	})
	t.Run("nested and or", func(t *testing.T) {
		t.Parallel()
		var tt TestTable
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Or(
				And(Col("age").Ge(int64(18)), Col("age").Lt(int64(65))),
				Col("vip").Eq(true),
			))
		tt.wantQuery = "SELECT * FROM users WHERE ((age >= $1 AND age < $2) OR vip = $3)"
		tt.wantArgs = []any{int64(18), int64(65), true}
		tt.assert(t)
	})
	t.Run("in subquery", func(t *testing.T) {
		t.Parallel()
		sub := NewSelectStatement().Columns("user_id").FromTable("posts")
		var tt TestTable
		tt.item = NewSelectStatement().
			FromTable("users").
			Where(Col("id").In(sub))
		tt.wantQuery = "SELECT * FROM users WHERE id IN (SELECT user_id FROM posts)"
		tt.assert(t)
	})
}
