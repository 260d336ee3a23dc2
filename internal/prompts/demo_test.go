package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptReq(args map[string]string) mcp.GetPromptRequest {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = args
	return req
}

func TestDemoPrompt_Definition(t *testing.T) {
	def := NewDemoPrompt().Definition()

	if def.Name != "mcp-demo" {
		t.Errorf("prompt name = %q, want mcp-demo", def.Name)
	}
	if len(def.Arguments) != 1 || def.Arguments[0].Name != "topic" {
		t.Fatalf("arguments = %+v, want single topic argument", def.Arguments)
	}
	if !def.Arguments[0].Required {
		t.Error("topic argument not marked required")
	}
}

func TestDemoPrompt_SeedsTopic(t *testing.T) {
	p := NewDemoPrompt()

	result, err := p.Handle(context.Background(), promptReq(map[string]string{
		"topic": "retail sales",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(result.Description, "retail sales") {
		t.Errorf("description = %q, missing topic", result.Description)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(result.Messages))
	}
	text, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Messages[0].Content)
	}
	if !strings.Contains(text.Text, "retail sales") {
		t.Error("template doesn't mention the topic")
	}
	if !strings.Contains(text.Text, "memo://insights") {
		t.Error("template doesn't mention the memo resource")
	}
}

func TestDemoPrompt_MissingTopicIsProtocolFault(t *testing.T) {
	p := NewDemoPrompt()

	tests := []map[string]string{
		nil,
		{},
		{"topic": "   "},
	}
	for _, args := range tests {
		if _, err := p.Handle(context.Background(), promptReq(args)); err == nil {
			t.Errorf("Handle(%v) succeeded, want missing-topic error", args)
		}
	}
}
