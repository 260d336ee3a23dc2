// Package resources exposes the business-insights memo as an MCP
// resource and emits change notifications when it mutates.
//
// There is exactly one resource: memo://insights. Reads re-render the
// memo from the live insight sequence; the MCP library rejects any
// other URI as a protocol-level failure.
package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MemoURI is the fixed address of the insights memo resource.
const MemoURI = "memo://insights"

// Renderer produces the memo document. Satisfied by *memo.Store.
type Renderer interface {
	Render(ctx context.Context) string
}

// Handler serves the memo resource.
type Handler struct {
	memo Renderer
}

// NewHandler creates a resource Handler over the given memo.
func NewHandler(memo Renderer) *Handler {
	return &Handler{memo: memo}
}

// MemoResource returns the MCP resource definition for registration.
func (h *Handler) MemoResource() mcp.Resource {
	return mcp.NewResource(
		MemoURI,
		"Business Insights Memo",
		mcp.WithResourceDescription("A living document of discovered business insights"),
		mcp.WithMIMEType("text/plain"),
	)
}

// HandleMemo renders the memo for a read of memo://insights.
func (h *Handler) HandleMemo(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     h.memo.Render(ctx),
		},
	}, nil
}
