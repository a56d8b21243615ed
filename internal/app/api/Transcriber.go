package api

import "context"

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// ReportGenerator turns a transcript into a structured report text.
type ReportGenerator interface {
	Generate(ctx context.Context, transcript string) (string, error)
}
