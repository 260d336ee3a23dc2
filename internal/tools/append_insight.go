package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// InsightAppender is the memo mutation surface. Satisfied by *memo.Store.
type InsightAppender interface {
	Append(insight string)
}

// ChangeNotifier signals observers after a memo mutation. Satisfied by
// *resources.Notifier.
type ChangeNotifier interface {
	MemoChanged()
}

// AppendInsightTool handles the append-insight MCP tool: the only
// operation that mutates the memo. It appends, then notifies — in that
// order, so no observer hears about a change before a concurrent read
// can see it.
type AppendInsightTool struct {
	memo     InsightAppender
	notifier ChangeNotifier
}

// NewAppendInsightTool creates an AppendInsightTool over the memo store
// and change notifier.
func NewAppendInsightTool(memo InsightAppender, notifier ChangeNotifier) *AppendInsightTool {
	return &AppendInsightTool{memo: memo, notifier: notifier}
}

// Definition returns the MCP tool definition for registration.
func (t *AppendInsightTool) Definition() mcp.Tool {
	return mcp.NewTool("append-insight",
		mcp.WithDescription("Add a business insight to the memo"),
		mcp.WithString("insight",
			mcp.Required(),
			mcp.Description("Business insight discovered from data analysis"),
		),
	)
}

// Handle processes the append-insight tool call.
func (t *AppendInsightTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	insight := req.GetString("insight", "")
	if insight == "" {
		return errorResultf("Missing insight argument"), nil
	}

	t.memo.Append(insight)
	if t.notifier != nil {
		t.notifier.MemoChanged()
	}

	return mcp.NewToolResultText("Insight added to memo"), nil
}
