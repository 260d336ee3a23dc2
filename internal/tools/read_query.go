package tools

import (
	"context"

	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReadQueryTool handles the read-query MCP tool.
// Policy: the statement must classify as a read (SELECT).
type ReadQueryTool struct {
	db *database.DB
}

// NewReadQueryTool creates a ReadQueryTool over the given executor.
func NewReadQueryTool(db *database.DB) *ReadQueryTool {
	return &ReadQueryTool{db: db}
}

// Definition returns the MCP tool definition for registration.
func (t *ReadQueryTool) Definition() mcp.Tool {
	return mcp.NewTool("read-query",
		mcp.WithDescription("Execute a SELECT query on the SQLite database"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("SELECT SQL query to execute"),
		),
	)
}

// Handle processes the read-query tool call.
func (t *ReadQueryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return errorResultf("Missing query argument"), nil
	}

	if database.Classify(query) != database.KindRead {
		return errorResultf("Only SELECT queries are allowed for read-query"), nil
	}

	result, err := t.db.Execute(ctx, query)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(result.Text()), nil
}
