//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"documio/internal/app/metrics"
	"documio/internal/config"
)

var pipelineSet = wire.NewSet(
	provideTranscriber,
	provideGenerator,
	provideRenderer,
	metrics.NewPipelineMetrics,
	providePipeline,
)

func InitializeApplication(ctx context.Context, settings *config.Settings, keys *config.APIKeys, logger *zap.Logger, observers Observers) (*Application, error) {
	wire.Build(pipelineSet, wire.Struct(new(Application), "*"))
	return &Application{}, nil
}
