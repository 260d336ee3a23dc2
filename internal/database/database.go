// Package database implements the query executor for the insightdb
// MCP server.
//
// It owns all interaction with SQLite: each Execute call borrows a
// dedicated connection, runs exactly one statement, and returns a
// uniform result — materialized rows for reads, an affected-row count
// for writes and schema statements. There is no cross-call transaction
// state; every statement is independently committed.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	_ "modernc.org/sqlite"
)

// ErrInvalidIdentifier is returned when a caller-supplied table name
// doesn't match the SQLite identifier grammar. Identifiers are
// interpolated into PRAGMA statements (PRAGMA takes no bind
// parameters), so anything else is rejected before it reaches the
// engine.
var ErrInvalidIdentifier = errors.New("database: invalid identifier")

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EngineError wraps a failure reported by SQLite itself — malformed
// SQL, constraint violations, missing tables or columns. The dispatcher
// uses it to distinguish engine diagnostics from generic errors.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string { return e.Err.Error() }
func (e *EngineError) Unwrap() error { return e.Err }

// DB is the query executor, backed by a single SQLite file.
type DB struct {
	pool *sql.DB
	path string
}

// Open opens (creating if absent) the SQLite database at path and
// applies the standard pragmas. The parent directory is created as
// needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("database: create data dir: %w", err)
		}
	}

	pool, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := pool.Exec(p); err != nil {
			pool.Close()
			return nil, fmt.Errorf("database: pragma %q: %w", p, err)
		}
	}

	return &DB{pool: pool, path: path}, nil
}

// Path returns the database file location.
func (d *DB) Path() string { return d.path }

// Close releases the underlying connection pool.
func (d *DB) Close() error { return d.pool.Close() }

// Execute runs a single SQL statement and returns its uniform result.
//
// The statement's leading keyword — never the caller's intent — decides
// the shape: SELECT (and anything unrecognized, e.g. PRAGMA) goes
// through the query path and returns materialized rows; INSERT, UPDATE,
// DELETE, CREATE, DROP and ALTER go through the exec path and return
// the engine-reported affected-row count. Engine failures come back
// wrapped in *EngineError.
func (d *DB) Execute(ctx context.Context, query string, params ...any) (*Result, error) {
	conn, err := d.pool.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("database: acquire connection: %w", err)
	}
	defer conn.Close()

	kind := Classify(query)

	if kind == KindWrite || kind == KindDDL {
		res, err := conn.ExecContext(ctx, query, params...)
		if err != nil {
			return nil, &EngineError{Err: err}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, &EngineError{Err: err}
		}
		return &Result{Kind: kind, AffectedRows: affected}, nil
	}

	rows, err := conn.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, &EngineError{Err: err}
	}
	defer rows.Close()

	// Materialize everything before the connection goes back to the
	// pool — the result must outlive the connection's scope.
	result, err := scanRows(rows, kind)
	if err != nil {
		return nil, &EngineError{Err: err}
	}
	return result, nil
}

// ListTables returns the names of all user tables via the sqlite_master
// catalog.
func (d *DB) ListTables(ctx context.Context) (*Result, error) {
	return d.Execute(ctx, "SELECT name FROM sqlite_master WHERE type='table'")
}

// DescribeTable returns column information for the named table.
//
// PRAGMA table_info cannot bind parameters, so the name is interpolated
// after being validated against the identifier grammar. Unknown tables
// yield an empty row set, matching SQLite's own PRAGMA behavior.
func (d *DB) DescribeTable(ctx context.Context, table string) (*Result, error) {
	if !ValidIdentifier(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, table)
	}
	return d.Execute(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
}

// ValidIdentifier reports whether s is a bare SQLite identifier:
// a letter or underscore followed by letters, digits or underscores.
func ValidIdentifier(s string) bool {
	return identPattern.MatchString(s)
}

func scanRows(rows *sql.Rows, kind StatementKind) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Kind: kind}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := Row{Columns: cols, Values: make(map[string]any, len(cols))}
		for i, col := range cols {
			row.Values[col] = normalize(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// normalize converts driver-specific value types into JSON-friendly
// ones. The sqlite driver hands TEXT back as []byte in some paths.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
