package memo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// memoPrompt instructs the model to restructure raw insights into a
// formal business memo. The assistant turn is prefilled with <memo> and
// the request stops at </memo>, so the completion is just the body.
const memoPrompt = `You are tasked with summarizing a set of business insights into a formal business memo. The insights are typically 1-2 sentences each and cover various aspects of the business. Your goal is to create a concise, well-organized memo that effectively communicates these insights to the recipient.

Here are the business insights you need to summarize:

<insights>
%s
</insights>

To create the memo, follow these steps:

1. Review all the insights carefully.
2. Group related insights together under appropriate subheadings.
3. Summarize each group of insights into 1-2 concise paragraphs.
4. Ensure the memo flows logically from one point to the next.
5. Use professional language and maintain a formal tone throughout the memo.

Format the memo using these guidelines:
- Single-space the content, with a blank line between paragraphs
- Use bullet points or numbered lists where appropriate
- Keep the entire memo to one page if possible, two pages maximum

Write your final memo within <memo> tags. Ensure that all components of the memo are included and properly formatted.`

// AnthropicSummarizer renders the memo through a single Anthropic
// prompt-completion exchange. No retries — the caller falls back to the
// deterministic rendering on any failure.
type AnthropicSummarizer struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicSummarizer creates a summarizer using the given API key,
// model name and completion cap.
func NewAnthropicSummarizer(apiKey, model string, maxTokens int) *AnthropicSummarizer {
	return &AnthropicSummarizer{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(model),
		maxTokens: int64(maxTokens),
	}
}

// Summarize sends the full insight list and returns the memo body.
func (s *AnthropicSummarizer) Summarize(ctx context.Context, insights []string) (string, error) {
	bullets := make([]string, len(insights))
	for i, insight := range insights {
		bullets[i] = "- " + insight
	}
	prompt := fmt.Sprintf(memoPrompt, strings.Join(bullets, "\n"))

	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			anthropic.NewAssistantMessage(anthropic.NewTextBlock("<memo>")),
		},
		StopSequences: []string{"</memo>"},
	})
	if err != nil {
		return "", fmt.Errorf("memo: synthesis request: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", errors.New("memo: synthesis returned no content")
	}

	text := strings.TrimSpace(msg.Content[0].Text)
	if text == "" {
		return "", errors.New("memo: synthesis returned empty memo")
	}
	return text, nil
}
