package app

import (
	"context"

	"go.uber.org/zap"

	"documio/internal/app/api"
	"documio/internal/app/api/gemini"
	"documio/internal/app/api/openai"
	"documio/internal/app/api/openai/chat"
	"documio/internal/app/api/openai/whisper"
	apperrors "documio/internal/app/errors"
	"documio/internal/app/metrics"
	"documio/internal/app/pipeline"
	"documio/internal/app/render"
	"documio/internal/config"
)

// Observers are extra pipeline observers, such as CLI progress.
type Observers []pipeline.Observer

// Application bundles the wired pipeline with its metrics.
type Application struct {
	Pipeline *pipeline.Pipeline
	Metrics  *metrics.PipelineMetrics
	Settings *config.Settings
	Logger   *zap.Logger
}

func provideTranscriber(settings *config.Settings, keys *config.APIKeys) api.Transcriber {
	client := openai.NewClient(keys.OpenAI, settings.Transcription.BaseURL)
	return whisper.NewRemoteTranscriber(client, settings.Transcription.Model)
}

// provideGenerator selects the generation backend from settings
func provideGenerator(ctx context.Context, settings *config.Settings, keys *config.APIKeys) (api.ReportGenerator, error) {
	gen := settings.Generation
	switch gen.Backend {
	case config.BackendOpenAI, "":
		client := openai.NewClient(keys.OpenAI, gen.BaseURL)
		return chat.NewReportGenerator(client, gen.Model, gen.Temperature), nil
	case config.BackendGemini:
		return gemini.NewReportGenerator(ctx, keys.Gemini, gen.BaseURL, gen.Model, gen.Temperature)
	}
	return nil, apperrors.Wrapf(apperrors.ErrInvalidBackend, "backend %q", gen.Backend)
}

func provideRenderer(settings *config.Settings) render.Renderer {
	return render.NewPDFRenderer(settings.Output.Dir)
}

func providePipeline(
	transcriber api.Transcriber,
	generator api.ReportGenerator,
	renderer render.Renderer,
	logger *zap.Logger,
	m *metrics.PipelineMetrics,
	observers Observers,
) *pipeline.Pipeline {
	opts := []pipeline.Option{
		pipeline.WithLogger(logger.Named("pipeline")),
		pipeline.WithObserver(m),
	}
	for _, o := range observers {
		opts = append(opts, pipeline.WithObserver(o))
	}
	return pipeline.New(transcriber, generator, renderer, opts...)
}
