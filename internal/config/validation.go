package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ValidateSettings checks a loaded configuration
func ValidateSettings(s *Settings) error {
	if err := ValidateBackend(s.Generation.Backend); err != nil {
		return err
	}
	if err := ValidateTemperature(s.Generation.Backend, s.Generation.Temperature); err != nil {
		return err
	}
	if strings.TrimSpace(s.Generation.Model) == "" {
		return fmt.Errorf("generation model cannot be empty")
	}
	if strings.TrimSpace(s.Transcription.Model) == "" {
		return fmt.Errorf("transcription model cannot be empty")
	}
	if strings.TrimSpace(s.Server.Port) == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if s.Server.ReadTimeoutSec < 0 || s.Server.WriteTimeoutSec < 0 || s.Server.IdleTimeoutSec < 0 {
		return fmt.Errorf("server timeouts cannot be negative")
	}
	if s.Server.MaxUploadMB < 0 {
		return fmt.Errorf("max upload size cannot be negative")
	}
	return nil
}

// ValidateBackend validates the generation backend name
func ValidateBackend(backend string) error {
	if !lo.Contains(SupportedBackends, backend) {
		return fmt.Errorf("unsupported generation backend %q (supported: %s)",
			backend, strings.Join(SupportedBackends, ", "))
	}
	return nil
}

// ValidateTemperature validates the sampling temperature. The OpenAI client
// omits a zero temperature from the request and the service then samples at
// its default of 1, so zero is rejected for that backend.
func ValidateTemperature(backend string, temperature float32) error {
	if temperature < 0 || temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", temperature)
	}
	if temperature == 0 && backend == BackendOpenAI {
		return fmt.Errorf("temperature 0 is not sent to the openai backend, use a small positive value such as 0.01")
	}
	return nil
}
