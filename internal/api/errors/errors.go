package errors

import (
	"fmt"
	"net/http"

	apperrors "documio/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindBadRequest ErrorKind = "bad_request"
	KindBadGateway ErrorKind = "bad_gateway"
	KindInternal   ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewBadGatewayError reports a failing upstream service
func NewBadGatewayError(message string) *APIError {
	return &APIError{
		Kind:    KindBadGateway,
		Message: message,
	}
}

// FromPipeline maps a pipeline failure to an API error. report is the text
// generated before the failure, if any, and is returned in the details.
func FromPipeline(err error, report string) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	switch apperrors.KindOf(err) {
	case apperrors.KindConsentMissing:
		apiErr = NewValidationError(apperrors.ConsentWarning, map[string]string{
			"consent": "is required",
		})
	case apperrors.KindTranscriptionFailed, apperrors.KindGenerationFailed:
		apiErr = NewBadGatewayError(err.Error())
	default:
		apiErr = NewInternalError(err.Error())
	}

	if report != "" {
		if apiErr.Details == nil {
			apiErr.Details = make(map[string]string)
		}
		apiErr.Details["report"] = report
	}
	return apiErr
}
