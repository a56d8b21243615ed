package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "documio/internal/app/errors"
	"documio/internal/app/report"
)

// ReportGenerator writes clinical reports through the chat completions API.
type ReportGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewReportGenerator creates a generator for model at the given temperature.
// An empty model selects gpt-4.
func NewReportGenerator(client *openai.Client, model string, temperature float32) *ReportGenerator {
	if model == "" {
		model = openai.GPT4
	}
	return &ReportGenerator{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

// Generate sends the report template with transcript as one user message and
// returns the content of the first choice unmodified.
func (g *ReportGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	resp, err := Chat(ctx, g.client, g.model, g.temperature, report.BuildPrompt(transcript))
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.ErrNoChoices
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", apperrors.ErrEmptyResponse
	}

	return content, nil
}

// Chat sends text as a single user message.
func Chat(ctx context.Context, client *openai.Client, model string, temperature float32, text string) (openai.ChatCompletionResponse, error) {
	request := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	}
	return client.CreateChatCompletion(ctx, request)
}
