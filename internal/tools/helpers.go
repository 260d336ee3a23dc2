// Package tools implements the MCP tool handlers for insightdb.
//
// Each tool is one file: a struct holding its dependencies, a
// Definition() returning the flat input schema, and a Handle compatible
// with mcp-go's CallToolRequest signature. The fixed catalog is
// assembled once at startup in internal/server.
//
// Error contract: a caller mistake — bad arguments, a statement shape
// the tool's policy disallows, or a statement SQLite rejects — comes
// back as a successful protocol response whose content is the
// diagnostic text (IsError set). Handlers return a Go error only for
// faults in the server itself.
package tools

import (
	"errors"
	"fmt"

	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/mark3labs/mcp-go/mcp"
)

// errorResult converts a failure into the single text payload a tool
// call returns. Engine diagnostics keep their own prefix so callers can
// tell SQLite complaints from dispatch errors.
func errorResult(err error) *mcp.CallToolResult {
	var engineErr *database.EngineError
	if errors.As(err, &engineErr) {
		return mcp.NewToolResultError(fmt.Sprintf("Database error: %v", engineErr.Err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err))
}

// errorResultf is errorResult for generic (non-engine) diagnostics.
func errorResultf(format string, args ...any) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + fmt.Sprintf(format, args...))
}
