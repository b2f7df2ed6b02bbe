// Package summary makes short article summaries with an OpenAI-compatible LLM.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsnet/pkg/config"
)

const (
	maxInput   = 2000 // characters of article text sent to the model
	minSummary = 20   // shorter answers are treated as failures
)

const systemPrompt = `You are an editor of IT and technology news. Summarize the article in 2-3 sentences.
Stick to facts: key technology, products, numbers and dates. Write the summary in the same language as the article.
Start with the subject matter itself, never with phrases like "The article discusses".`

// OpenAI summarizes articles with chat completions
type OpenAI struct {
	client *openai.Client
	cfg    config.SummaryConfig
}

// NewOpenAI makes a summarizer for the configured endpoint
func NewOpenAI(cfg config.SummaryConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &OpenAI{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

// Summarize returns a summary of the article text. Errors and too short answers are
// returned as errors, callers fall back to heuristic summaries.
func (o *OpenAI) Summarize(ctx context.Context, title, text, source string) (string, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to summarize")
	}

	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	if r := []rune(text); len(r) > maxInput {
		text = string(r[:maxInput])
	}
	prompt := fmt.Sprintf("Title: %s\nSource: %s\nText: %s", title, source, text)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.cfg.Model,
		Temperature: float32(o.cfg.Temperature),
		MaxTokens:   o.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	res := strings.TrimSpace(resp.Choices[0].Message.Content)
	if len([]rune(res)) <= minSummary {
		return "", fmt.Errorf("summary too short: %q", res)
	}
	return res, nil
}
