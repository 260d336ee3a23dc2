package tools

import (
	"context"
	"errors"

	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/mark3labs/mcp-go/mcp"
)

// DescribeTableTool handles the describe-table MCP tool.
//
// The table name ends up interpolated into a PRAGMA statement, so it is
// validated against the identifier grammar first — the one place where
// caller input could otherwise reach statement text unbound.
type DescribeTableTool struct {
	db *database.DB
}

// NewDescribeTableTool creates a DescribeTableTool over the given executor.
func NewDescribeTableTool(db *database.DB) *DescribeTableTool {
	return &DescribeTableTool{db: db}
}

// Definition returns the MCP tool definition for registration.
func (t *DescribeTableTool) Definition() mcp.Tool {
	return mcp.NewTool("describe-table",
		mcp.WithDescription("Get the schema information for a specific table"),
		mcp.WithString("table_name",
			mcp.Required(),
			mcp.Description("Name of the table to describe"),
		),
	)
}

// Handle processes the describe-table tool call.
func (t *DescribeTableTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := req.GetString("table_name", "")
	if table == "" {
		return errorResultf("Missing table_name argument"), nil
	}

	result, err := t.db.DescribeTable(ctx, table)
	if err != nil {
		if errors.Is(err, database.ErrInvalidIdentifier) {
			return errorResultf("Invalid table name: %q", table), nil
		}
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(result.Text()), nil
}
