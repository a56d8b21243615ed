package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "documio/internal/app/errors"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *ReportGenerator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gen, err := NewReportGenerator(context.Background(), "AIzaTest-1234567890abcdef1234567890", server.URL+"/", "gemini-2.0-flash", 0.3)
	require.NoError(t, err)
	return gen
}

func TestReportGenerator_Generate(t *testing.T) {
	var body map[string]interface{}
	var path string
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Symptome: Kopfschmerzen"}]}}]}`))
	})

	result, err := gen.Generate(context.Background(), "Der Patient klagt über Kopfschmerzen.")
	require.NoError(t, err)

	assert.Equal(t, "1. Symptome: Kopfschmerzen", result)
	assert.True(t, strings.HasSuffix(path, "gemini-2.0-flash:generateContent"), "path %s", path)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Der Patient klagt über Kopfschmerzen.")
	assert.Contains(t, string(raw), "TRANSKRIPT:")

	genConfig, ok := body["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 0.3, genConfig["temperature"], 1e-6)
}

func TestReportGenerator_NoCandidates(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := gen.Generate(context.Background(), "transcript")
	assert.True(t, errors.Is(err, apperrors.ErrNoChoices), "got %v", err)
}

func TestReportGenerator_ServiceError(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := gen.Generate(context.Background(), "transcript")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generateContent failed")
}

func TestNewReportGenerator_MissingKey(t *testing.T) {
	_, err := NewReportGenerator(context.Background(), " ", "", "gemini-2.0-flash", 0.3)
	assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))
}
