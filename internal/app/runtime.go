package app

import (
	"fmt"

	"go.uber.org/zap"

	"documio/internal/app/logging"
	"documio/internal/config"
)

// Runtime is the configuration every command starts from
type Runtime struct {
	Settings *config.Settings
	Keys     *config.APIKeys
	Logger   *zap.Logger
}

// LoadRuntime reads .env, API keys and the settings file and builds the
// logger. A missing API key is only logged as a warning.
func LoadRuntime(configPath string, development bool) (*Runtime, error) {
	keys, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logger, err := logging.NewLogger(development || settings.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if err := config.RequireKeyFor(keys, settings.Generation.Backend); err != nil {
		logger.Warn("API key missing, service calls will fail", zap.Error(err))
	}

	return &Runtime{Settings: settings, Keys: keys, Logger: logger}, nil
}
