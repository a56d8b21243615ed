package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	apperrors "documio/internal/app/errors"
	"documio/internal/app/report"
)

// ReportGenerator writes clinical reports with a Google Gemini model.
type ReportGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewReportGenerator creates a Gemini-backed generator. baseURL overrides the
// API endpoint when not empty.
func NewReportGenerator(ctx context.Context, apiKey, baseURL, model string, temperature float32) (*ReportGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey, "gemini")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &ReportGenerator{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

// Generate sends the report template with transcript as a single-turn request.
func (g *ReportGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(report.BuildPrompt(transcript)),
		&genai.GenerateContentConfig{Temperature: genai.Ptr(g.temperature)},
	)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", apperrors.ErrNoChoices
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", apperrors.ErrEmptyResponse
	}
	return text, nil
}
