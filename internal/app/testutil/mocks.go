package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"documio/internal/app/render"
)

// MockTranscriber is a mock implementation of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

// MockGenerator is a mock implementation of api.ReportGenerator
type MockGenerator struct {
	mock.Mock
}

func NewMockGenerator(t *testing.T) *MockGenerator {
	m := &MockGenerator{}
	m.Test(t)
	return m
}

func (m *MockGenerator) Generate(ctx context.Context, transcript string) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

// MockRenderer is a mock implementation of render.Renderer
type MockRenderer struct {
	mock.Mock
}

func NewMockRenderer(t *testing.T) *MockRenderer {
	m := &MockRenderer{}
	m.Test(t)
	return m
}

func (m *MockRenderer) Render(ctx context.Context, doc render.Document) (render.Rendered, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(render.Rendered), args.Error(1)
}
