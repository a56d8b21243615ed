package config

// Generation backends
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// SupportedBackends lists every accepted generation.backend value
var SupportedBackends = []string{BackendOpenAI, BackendGemini}

const (
	// DefaultConfigPath is read when --config is not given
	DefaultConfigPath = "documio.yaml"

	// Network defaults
	DefaultHost            = "0.0.0.0"
	DefaultHTTPPort        = "7860"
	DefaultReadTimeoutSec  = 30
	DefaultWriteTimeoutSec = 300
	DefaultIdleTimeoutSec  = 60
	DefaultMaxUploadMB     = 25

	// Model defaults
	DefaultTranscriptionModel = "whisper-1"
	DefaultOpenAIChatModel    = "gpt-4"
	DefaultGeminiModel        = "gemini-2.0-flash"

	// DefaultTemperature keeps the wording conservative while not fully greedy.
	DefaultTemperature float32 = 0.3
)
