package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the documio.yaml configuration
type Settings struct {
	Server        ServerSettings        `yaml:"server"`
	Transcription TranscriptionSettings `yaml:"transcription"`
	Generation    GenerationSettings    `yaml:"generation"`
	Output        OutputSettings        `yaml:"output"`
	Log           LogSettings           `yaml:"log"`
}

// ServerSettings configures the HTTP form UI
type ServerSettings struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	Environment     string `yaml:"environment"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec,omitempty"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec,omitempty"`
	IdleTimeoutSec  int    `yaml:"idle_timeout_sec,omitempty"`
	MaxUploadMB     int64  `yaml:"max_upload_mb,omitempty"`
}

// TranscriptionSettings configures the speech-to-text call
type TranscriptionSettings struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// GenerationSettings configures the report generation call
type GenerationSettings struct {
	// Backend is "openai" or "gemini"
	Backend     string  `yaml:"backend"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	BaseURL     string  `yaml:"base_url,omitempty"`
}

// OutputSettings configures where rendered reports go
type OutputSettings struct {
	Dir string `yaml:"dir"`
}

// LogSettings configures zap
type LogSettings struct {
	Development bool `yaml:"development"`
}

// ReadTimeout returns the server read timeout
func (s ServerSettings) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the server write timeout
func (s ServerSettings) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// IdleTimeout returns the server idle timeout
func (s ServerSettings) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// DefaultSettings returns the built-in configuration
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Host:            DefaultHost,
			Port:            DefaultHTTPPort,
			Environment:     "development",
			ReadTimeoutSec:  DefaultReadTimeoutSec,
			WriteTimeoutSec: DefaultWriteTimeoutSec,
			IdleTimeoutSec:  DefaultIdleTimeoutSec,
			MaxUploadMB:     DefaultMaxUploadMB,
		},
		Transcription: TranscriptionSettings{
			Model: DefaultTranscriptionModel,
		},
		Generation: GenerationSettings{
			Backend:     BackendOpenAI,
			Model:       DefaultOpenAIChatModel,
			Temperature: DefaultTemperature,
		},
		Output: OutputSettings{
			Dir: ".",
		},
	}
}

// LoadSettings reads the YAML file at path on top of the defaults.
// A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	expandEnvironmentVariables(settings)
	applyBackendDefaults(settings)

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return settings, nil
}

// expandEnvironmentVariables expands ${VAR} references
func expandEnvironmentVariables(s *Settings) {
	s.Transcription.BaseURL = os.ExpandEnv(s.Transcription.BaseURL)
	s.Generation.BaseURL = os.ExpandEnv(s.Generation.BaseURL)
	s.Output.Dir = os.ExpandEnv(s.Output.Dir)
	s.Server.Host = os.ExpandEnv(s.Server.Host)
	s.Server.Port = os.ExpandEnv(s.Server.Port)
}

// applyBackendDefaults picks the model default for the chosen backend when the
// file switches backend without naming a model.
func applyBackendDefaults(s *Settings) {
	if s.Generation.Backend == BackendGemini && s.Generation.Model == DefaultOpenAIChatModel {
		s.Generation.Model = DefaultGeminiModel
	}
	if s.Output.Dir == "" {
		s.Output.Dir = "."
	}
}
