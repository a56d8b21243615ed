package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey  = New("API key is required")
	ErrInvalidBackend = New("unknown generation backend")

	// Service errors
	ErrEmptyResponse = New("empty response from text generation service")
	ErrNoChoices     = New("text generation service returned no choices")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Kind identifies the pipeline stage an error came from.
type Kind string

const (
	KindConsentMissing      Kind = "consent_missing"
	KindTranscriptionFailed Kind = "transcription_failed"
	KindGenerationFailed    Kind = "generation_failed"
	KindRenderingFailed     Kind = "rendering_failed"
)

// String returns the kind identifier
func (k Kind) String() string {
	return string(k)
}

func (k Kind) describe() string {
	switch k {
	case KindConsentMissing:
		return "consent missing"
	case KindTranscriptionFailed:
		return "transcription failed"
	case KindGenerationFailed:
		return "report generation failed"
	case KindRenderingFailed:
		return "rendering failed"
	}
	return string(k)
}

// PipelineError is returned by the report pipeline. Cause is nil for
// KindConsentMissing.
type PipelineError struct {
	Kind  Kind
	Cause error
}

// ErrConsentMissing is returned when a submission arrives without consent.
var ErrConsentMissing = &PipelineError{Kind: KindConsentMissing}

// NewPipelineError wraps cause with the given kind
func NewPipelineError(kind Kind, cause error) *PipelineError {
	return &PipelineError{Kind: kind, Cause: cause}
}

func (e *PipelineError) Error() string {
	if e.Cause == nil {
		return e.Kind.describe()
	}
	return fmt.Sprintf("%s: %v", e.Kind.describe(), e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Is matches any PipelineError of the same kind
func (e *PipelineError) Is(target error) bool {
	t, ok := target.(*PipelineError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the pipeline kind carried by err, or "" if there is none.
func KindOf(err error) Kind {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

const (
	// ConsentWarning is shown instead of a report when consent is missing.
	ConsentWarning = "⚠️ DSGVO-Einwilligung erforderlich."
	// FailurePrefix starts every user-facing failure message.
	FailurePrefix = "❌ Fehler: "
)

// DisplayMessage formats err the way the form UI shows it.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		if pe.Kind == KindConsentMissing {
			return ConsentWarning
		}
		if pe.Cause != nil {
			return FailurePrefix + pe.Cause.Error()
		}
	}
	return FailurePrefix + err.Error()
}
