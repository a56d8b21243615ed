package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "documio/internal/app/errors"
	"documio/internal/app/testutil"
)

func newRoot() *cobra.Command {
	audioPath, practiceName, patientName, birthDate = "", "", "", ""
	consent, forceProgress = false, false

	root := &cobra.Command{Use: "documio", SilenceUsage: true}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().BoolP("verbose", "V", false, "")
	root.AddCommand(Cmd)
	return root
}

// fakeOpenAI answers the transcription and chat endpoints
func fakeOpenAI(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"text": %q}`, testutil.SampleTranscript)
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) != 1 ||
			!strings.Contains(req.Messages[0].Content, testutil.SampleTranscript) {
			http.Error(w, "unexpected request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: testutil.SampleReport},
			}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeSettings(t *testing.T, baseURL, outputDir string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "documio.yaml")
	content := fmt.Sprintf(`transcription:
  model: whisper-1
  base_url: %s
generation:
  backend: openai
  model: gpt-4
  temperature: 0.3
  base_url: %s
output:
  dir: %s
`, baseURL, baseURL, outputDir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReportCommand(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890abcdef")
	t.Setenv("GEMINI_API_KEY", "")

	var calls int32
	server := fakeOpenAI(t, &calls)
	outputDir := t.TempDir()
	settingsPath := writeSettings(t, server.URL+"/v1", outputDir)
	audio := testutil.CreateTestAudioFile(t, "consultation.wav")

	t.Run("without consent or audio", func(t *testing.T) {
		root := newRoot()
		var stdout, stderr bytes.Buffer
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs([]string{"report", "--config", settingsPath, "--patient", "Max Müller"})

		err := root.Execute()

		assert.ErrorIs(t, err, apperrors.ErrConsentMissing)
		assert.Contains(t, stderr.String(), "⚠️ DSGVO-Einwilligung erforderlich.")
		assert.NotContains(t, stderr.String(), "audio")
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("consent without audio", func(t *testing.T) {
		root := newRoot()
		var stdout, stderr bytes.Buffer
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs([]string{"report", "--config", settingsPath, "--consent"})

		err := root.Execute()

		assert.ErrorIs(t, err, errAudioRequired)
		assert.Contains(t, stderr.String(), "❌ Fehler: --audio is required")
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("without consent", func(t *testing.T) {
		root := newRoot()
		var stdout, stderr bytes.Buffer
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs([]string{"report", "--config", settingsPath, "--audio", audio, "--patient", "Max Müller"})

		err := root.Execute()

		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "⚠️ DSGVO-Einwilligung erforderlich.")
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("with consent", func(t *testing.T) {
		root := newRoot()
		var stdout, stderr bytes.Buffer
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetArgs([]string{
			"report",
			"--config", settingsPath,
			"--audio", audio,
			"--practice", "Hausarztpraxis Dr. Meier",
			"--patient", "Max Müller",
			"--birth-date", "01.02.1960",
			"--consent",
		})

		require.NoError(t, root.Execute(), stderr.String())

		want := filepath.Join(outputDir, time.Now().Format("2006-01-02")+"_Befund_Max_Müller.pdf")
		assert.Contains(t, stdout.String(), testutil.SampleReport)
		assert.Contains(t, stdout.String(), "PDF: "+want)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

		_, err := os.Stat(want)
		assert.NoError(t, err)
	})
}
