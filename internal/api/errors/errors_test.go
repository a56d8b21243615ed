package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "documio/internal/app/errors"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindBadGateway, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
		{ErrorKind("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, (&APIError{Kind: tt.kind}).HTTPStatus())
		})
	}
}

func TestFromPipeline(t *testing.T) {
	cause := stderrors.New("upstream timeout")

	t.Run("consent", func(t *testing.T) {
		apiErr := FromPipeline(apperrors.ErrConsentMissing, "")
		require.NotNil(t, apiErr)
		assert.Equal(t, KindValidation, apiErr.Kind)
		assert.Equal(t, apperrors.ConsentWarning, apiErr.Message)
		assert.Equal(t, "is required", apiErr.Details["consent"])
	})

	t.Run("transcription", func(t *testing.T) {
		apiErr := FromPipeline(apperrors.NewPipelineError(apperrors.KindTranscriptionFailed, cause), "")
		assert.Equal(t, KindBadGateway, apiErr.Kind)
		assert.Contains(t, apiErr.Message, "upstream timeout")
		assert.Empty(t, apiErr.Details)
	})

	t.Run("generation", func(t *testing.T) {
		apiErr := FromPipeline(apperrors.NewPipelineError(apperrors.KindGenerationFailed, cause), "")
		assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus())
	})

	t.Run("rendering keeps report", func(t *testing.T) {
		apiErr := FromPipeline(apperrors.NewPipelineError(apperrors.KindRenderingFailed, cause), "1. Symptome")
		assert.Equal(t, KindInternal, apiErr.Kind)
		assert.Equal(t, "1. Symptome", apiErr.Details["report"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FromPipeline(nil, ""))
	})
}
