package tools

import (
	"context"

	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/mark3labs/mcp-go/mcp"
)

// WriteQueryTool handles the write-query MCP tool.
// Policy: the statement must NOT classify as a read — SELECT belongs
// to read-query. Anything else runs and reports its affected-row count.
type WriteQueryTool struct {
	db *database.DB
}

// NewWriteQueryTool creates a WriteQueryTool over the given executor.
func NewWriteQueryTool(db *database.DB) *WriteQueryTool {
	return &WriteQueryTool{db: db}
}

// Definition returns the MCP tool definition for registration.
func (t *WriteQueryTool) Definition() mcp.Tool {
	return mcp.NewTool("write-query",
		mcp.WithDescription("Execute an INSERT, UPDATE, or DELETE query on the SQLite database"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("SQL query to execute"),
		),
	)
}

// Handle processes the write-query tool call.
func (t *WriteQueryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return errorResultf("Missing query argument"), nil
	}

	if database.Classify(query) == database.KindRead {
		return errorResultf("SELECT queries are not allowed for write-query"), nil
	}

	result, err := t.db.Execute(ctx, query)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(result.Text()), nil
}
