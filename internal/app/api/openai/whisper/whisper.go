package whisper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
// An empty model selects whisper-1.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// Transcript uploads the audio file in a single request and returns the text
// field of the response unchanged.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	audio, err := os.Open(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	req := openai.AudioRequest{
		Model:    rt.model,
		Reader:   audio,
		FilePath: filepath.Base(inputFilePath),
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
