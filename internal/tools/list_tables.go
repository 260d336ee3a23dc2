package tools

import (
	"context"

	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListTablesTool handles the list-tables MCP tool. It takes no
// arguments and issues a fixed catalog-introspection query.
type ListTablesTool struct {
	db *database.DB
}

// NewListTablesTool creates a ListTablesTool over the given executor.
func NewListTablesTool(db *database.DB) *ListTablesTool {
	return &ListTablesTool{db: db}
}

// Definition returns the MCP tool definition for registration.
func (t *ListTablesTool) Definition() mcp.Tool {
	return mcp.NewTool("list-tables",
		mcp.WithDescription("List all tables in the SQLite database"),
	)
}

// Handle processes the list-tables tool call. Arguments are ignored.
func (t *ListTablesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := t.db.ListTables(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(result.Text()), nil
}
