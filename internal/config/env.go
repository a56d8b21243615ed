package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// envPaths are checked in order; the first one found is loaded.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error, the variables may be set system-wide.
func LoadEnv() error {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Printf("✅ Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Empty keys are allowed; malformed ones are rejected.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if apiKeys.Gemini != "" {
		if !strings.HasPrefix(apiKeys.Gemini, "AIza") {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.Gemini) < 30 {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// ValidateAPIKeys reports which keys are available without failing.
// Requests to a service without a key fail with that service's auth error.
func ValidateAPIKeys(apiKeys *APIKeys) error {
	var availableKeys []string
	if apiKeys.OpenAI != "" {
		availableKeys = append(availableKeys, "OpenAI")
	}
	if apiKeys.Gemini != "" {
		availableKeys = append(availableKeys, "Gemini")
	}

	if len(availableKeys) > 0 {
		fmt.Printf("✅ API keys available: %s\n", strings.Join(availableKeys, ", "))
	} else {
		fmt.Printf("ℹ️  No API keys configured (transcription and report generation will fail)\n")
	}

	return nil
}

// RequireKeyFor checks that the key needed by a generation backend is present.
// Transcription always goes through OpenAI.
func RequireKeyFor(apiKeys *APIKeys, backend string) error {
	if apiKeys.OpenAI == "" {
		return fmt.Errorf("transcription requires OPENAI_API_KEY in environment or .env file")
	}
	if backend == BackendGemini && apiKeys.Gemini == "" {
		return fmt.Errorf("the gemini backend requires GEMINI_API_KEY in environment or .env file")
	}
	return nil
}

// InitializeConfig loads environment and validates configuration
// This is the main entry point for configuration loading
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	ValidateAPIKeys(apiKeys)

	return apiKeys, nil
}
