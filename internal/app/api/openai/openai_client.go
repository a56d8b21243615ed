package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI client for apiKey. baseURL overrides the API
// endpoint when not empty. An empty key is accepted; requests then fail with
// the service's authentication error.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
