package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return db
}

// --- Classification ---

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  StatementKind
	}{
		{"SELECT 1", KindRead},
		{"select 1", KindRead},
		{"Select 1", KindRead},
		{"  select 1", KindRead},
		{"\n\tSELECT * FROM t", KindRead},
		{"INSERT INTO t VALUES (1)", KindWrite},
		{"update t set x=1", KindWrite},
		{"DELETE FROM t", KindWrite},
		{"CREATE TABLE t (id INTEGER)", KindDDL},
		{"drop table t", KindDDL},
		{"ALTER TABLE t ADD COLUMN y TEXT", KindDDL},
		{"PRAGMA table_info(t)", KindUnknown},
		{"EXPLAIN SELECT 1", KindUnknown},
		{"", KindUnknown},
		{"   ", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestIsCreateTable(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"CREATE TABLE t (id INTEGER)", true},
		{"  create   table t (id INTEGER)", true},
		{"Create Table t (id INTEGER)", true},
		{"CREATE INDEX idx ON t(x)", false},
		{"CREATE VIEW v AS SELECT 1", false},
		{"SELECT * FROM t", false},
		{"CREATE", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := IsCreateTable(tt.query); got != tt.want {
				t.Errorf("IsCreateTable(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// --- Execute ---

func TestExecute_RoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	created, err := db.Execute(ctx, "CREATE TABLE t (id INTEGER, name TEXT)")
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	if created.Kind != KindDDL {
		t.Errorf("create kind = %s, want ddl", created.Kind)
	}

	inserted, err := db.Execute(ctx, "INSERT INTO t VALUES (1, 'a')")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if inserted.AffectedRows != 1 {
		t.Errorf("affected rows = %d, want 1", inserted.AffectedRows)
	}

	// A write's effects must be visible to an immediately following read.
	got, err := db.Execute(ctx, "SELECT * FROM t")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(got.Rows))
	}
	row := got.Rows[0]
	if row.Values["id"] != int64(1) {
		t.Errorf("id = %v (%T), want 1", row.Values["id"], row.Values["id"])
	}
	if row.Values["name"] != "a" {
		t.Errorf("name = %v, want a", row.Values["name"])
	}
	if len(row.Columns) != 2 || row.Columns[0] != "id" || row.Columns[1] != "name" {
		t.Errorf("columns = %v, want [id name]", row.Columns)
	}
}

func TestExecute_Params(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := db.Execute(ctx, "CREATE TABLE t (id INTEGER, name TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Execute(ctx, "INSERT INTO t VALUES (?, ?)", 2, "b"); err != nil {
		t.Fatalf("insert with params: %v", err)
	}

	got, err := db.Execute(ctx, "SELECT name FROM t WHERE id = ?", 2)
	if err != nil {
		t.Fatalf("select with params: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0].Values["name"] != "b" {
		t.Errorf("got %+v, want one row with name=b", got.Rows)
	}
}

func TestExecute_UpdateAffectedCount(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mustExec(t, db, "CREATE TABLE t (id INTEGER, x INTEGER)")
	mustExec(t, db, "INSERT INTO t VALUES (1, 0)")
	mustExec(t, db, "INSERT INTO t VALUES (2, 0)")

	res, err := db.Execute(ctx, "UPDATE t SET x = 1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.AffectedRows != 2 {
		t.Errorf("affected rows = %d, want 2", res.AffectedRows)
	}
}

func TestExecute_EngineError(t *testing.T) {
	db := testDB(t)

	tests := []struct {
		name  string
		query string
	}{
		{"syntax error", "SELEC * FRO t"},
		{"missing table", "SELECT * FROM no_such_table"},
		{"bad insert", "INSERT INTO no_such_table VALUES (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Execute(context.Background(), tt.query)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var engineErr *EngineError
			if !errors.As(err, &engineErr) {
				t.Errorf("error %v (%T) is not an EngineError", err, err)
			}
		})
	}
}

func TestExecute_ConstraintViolation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY)")
	mustExec(t, db, "INSERT INTO t VALUES (1)")

	_, err := db.Execute(ctx, "INSERT INTO t VALUES (1)")
	if err == nil {
		t.Fatal("expected constraint violation, got nil")
	}
	var engineErr *EngineError
	if !errors.As(err, &engineErr) {
		t.Errorf("error %v (%T) is not an EngineError", err, err)
	}
}

func TestExecute_SequentialCallsSeeCommittedState(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mustExec(t, db, "CREATE TABLE counter (n INTEGER)")
	mustExec(t, db, "INSERT INTO counter VALUES (0)")

	// Each call runs on its own connection; committed state must flow
	// from each write to the next read.
	for i := 1; i <= 5; i++ {
		mustExec(t, db, "UPDATE counter SET n = n + 1")
		got, err := db.Execute(ctx, "SELECT n FROM counter")
		if err != nil {
			t.Fatalf("select after update %d: %v", i, err)
		}
		if got.Rows[0].Values["n"] != int64(i) {
			t.Fatalf("after %d updates n = %v, want %d", i, got.Rows[0].Values["n"], i)
		}
	}
}

// --- Introspection ---

func TestListTables(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	got, err := db.ListTables(ctx)
	if err != nil {
		t.Fatalf("ListTables on empty db: %v", err)
	}
	if len(got.Rows) != 0 {
		t.Errorf("empty db has %d tables, want 0", len(got.Rows))
	}

	mustExec(t, db, "CREATE TABLE alpha (id INTEGER)")
	mustExec(t, db, "CREATE TABLE beta (id INTEGER)")

	got, err = db.ListTables(ctx)
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	names := make(map[string]bool)
	for _, row := range got.Rows {
		name, _ := row.Values["name"].(string)
		names[name] = true
	}
	if !names["alpha"] || !names["beta"] {
		t.Errorf("table names = %v, want alpha and beta", names)
	}
}

func TestDescribeTable(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mustExec(t, db, "CREATE TABLE t (id INTEGER, name TEXT)")

	got, err := db.DescribeTable(ctx, "t")
	if err != nil {
		t.Fatalf("DescribeTable: %v", err)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("column rows = %d, want 2", len(got.Rows))
	}
	if got.Rows[0].Values["name"] != "id" || got.Rows[1].Values["name"] != "name" {
		t.Errorf("column order = %v, %v; want id, name",
			got.Rows[0].Values["name"], got.Rows[1].Values["name"])
	}
}

func TestDescribeTable_RejectsInvalidIdentifier(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	bad := []string{
		"",
		"users; DROP TABLE users",
		"users)",
		"1users",
		"a b",
		"users--",
	}
	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := db.DescribeTable(ctx, name)
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("DescribeTable(%q) err = %v, want ErrInvalidIdentifier", name, err)
			}
		})
	}
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"t", "users", "_private", "table_2", "CamelCase"}
	for _, s := range valid {
		if !ValidIdentifier(s) {
			t.Errorf("ValidIdentifier(%q) = false, want true", s)
		}
	}
}

// --- Result rendering ---

func TestResultText(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mustExec(t, db, "CREATE TABLE t (id INTEGER, name TEXT)")
	mustExec(t, db, "INSERT INTO t VALUES (1, 'a')")

	got, err := db.Execute(ctx, "SELECT * FROM t")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	want := `[{"id": 1, "name": "a"}]`
	if got.Text() != want {
		t.Errorf("Text() = %s, want %s", got.Text(), want)
	}

	res, err := db.Execute(ctx, "INSERT INTO t VALUES (2, 'b')")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if res.Text() != `[{"affected_rows": 1}]` {
		t.Errorf("write Text() = %s", res.Text())
	}

	empty, err := db.Execute(ctx, "SELECT * FROM t WHERE id = 99")
	if err != nil {
		t.Fatalf("empty select: %v", err)
	}
	if empty.Text() != "[]" {
		t.Errorf("empty Text() = %s, want []", empty.Text())
	}
}

func TestResultText_NullAndText(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mustExec(t, db, "CREATE TABLE t (a TEXT, b INTEGER)")
	mustExec(t, db, "INSERT INTO t VALUES ('hi', NULL)")

	got, err := db.Execute(ctx, "SELECT * FROM t")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	text := got.Text()
	if !strings.Contains(text, `"a": "hi"`) || !strings.Contains(text, `"b": null`) {
		t.Errorf("Text() = %s, want hi and null", text)
	}
}

func mustExec(t *testing.T, db *DB, query string) {
	t.Helper()
	if _, err := db.Execute(context.Background(), query); err != nil {
		t.Fatalf("Execute(%q): %v", query, err)
	}
}
