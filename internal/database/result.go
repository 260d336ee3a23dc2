package database

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StatementKind classifies a SQL statement by its leading keyword.
type StatementKind int

const (
	// KindUnknown covers statements outside the recognized keyword set
	// (PRAGMA, EXPLAIN, ...). They run through the query path so SQLite
	// itself reports whatever is wrong with them.
	KindUnknown StatementKind = iota
	// KindRead is a SELECT statement.
	KindRead
	// KindWrite is INSERT, UPDATE or DELETE.
	KindWrite
	// KindDDL is CREATE, DROP or ALTER.
	KindDDL
)

func (k StatementKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindDDL:
		return "ddl"
	default:
		return "unknown"
	}
}

// Classify inspects the trimmed, case-folded leading keyword of query.
func Classify(query string) StatementKind {
	keyword := leadingKeyword(query)
	switch keyword {
	case "SELECT":
		return KindRead
	case "INSERT", "UPDATE", "DELETE":
		return KindWrite
	case "CREATE", "DROP", "ALTER":
		return KindDDL
	default:
		return KindUnknown
	}
}

// IsCreateTable reports whether query's first two keywords are exactly
// CREATE TABLE. CREATE INDEX, CREATE VIEW etc. don't qualify.
func IsCreateTable(query string) bool {
	fields := strings.Fields(strings.TrimSpace(query))
	return len(fields) >= 2 &&
		strings.EqualFold(fields[0], "CREATE") &&
		strings.EqualFold(fields[1], "TABLE")
}

func leadingKeyword(query string) string {
	fields := strings.Fields(strings.TrimSpace(query))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// Row is one result row: the engine's column order plus a name→value
// mapping. Column names are unique within a row.
type Row struct {
	Columns []string
	Values  map[string]any
}

// Result is the uniform outcome of one Execute call. Reads carry Rows;
// writes and DDL carry AffectedRows (0 is typical for DDL).
type Result struct {
	Kind         StatementKind
	Rows         []Row
	AffectedRows int64
}

// Text renders the result as the single text payload a tool call
// returns: a JSON array of row objects with columns in engine order,
// or [{"affected_rows": N}] for writes and DDL.
func (r *Result) Text() string {
	if r.Kind == KindWrite || r.Kind == KindDDL {
		return `[{"affected_rows": ` + strconv.FormatInt(r.AffectedRows, 10) + `}]`
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, row := range r.Rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('{')
		for j, col := range row.Columns {
			if j > 0 {
				b.WriteString(", ")
			}
			key, _ := json.Marshal(col)
			b.Write(key)
			b.WriteString(": ")
			val, err := json.Marshal(row.Values[col])
			if err != nil {
				val, _ = json.Marshal(fmt.Sprint(row.Values[col]))
			}
			b.Write(val)
		}
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.String()
}
