package tools

import (
	"context"

	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreateTableTool handles the create-table MCP tool.
// Policy: the statement's first two keywords must be exactly
// CREATE TABLE — CREATE INDEX and friends are rejected.
type CreateTableTool struct {
	db *database.DB
}

// NewCreateTableTool creates a CreateTableTool over the given executor.
func NewCreateTableTool(db *database.DB) *CreateTableTool {
	return &CreateTableTool{db: db}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTableTool) Definition() mcp.Tool {
	return mcp.NewTool("create-table",
		mcp.WithDescription("Create a new table in the SQLite database"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("CREATE TABLE SQL statement"),
		),
	)
}

// Handle processes the create-table tool call.
func (t *CreateTableTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return errorResultf("Missing query argument"), nil
	}

	if !database.IsCreateTable(query) {
		return errorResultf("Only CREATE TABLE statements are allowed"), nil
	}

	if _, err := t.db.Execute(ctx, query); err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText("Table created successfully"), nil
}
