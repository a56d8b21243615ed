package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "documio/internal/app/errors"
	"documio/internal/app/pipeline"
	"documio/internal/app/testutil"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, in pipeline.SessionInput) (*pipeline.Result, error) {
	args := m.Called(ctx, in)
	result, _ := args.Get(0).(*pipeline.Result)
	return result, args.Error(1)
}

type testEnv struct {
	router    *gin.Engine
	runner    *mockRunner
	outputDir string
	uploadDir string
}

func setupTestRouter(t *testing.T) testEnv {
	gin.SetMode(gin.TestMode)

	env := testEnv{
		router:    gin.New(),
		runner:    &mockRunner{},
		outputDir: t.TempDir(),
		uploadDir: t.TempDir(),
	}
	env.runner.Test(t)
	t.Cleanup(func() { env.runner.AssertExpectations(t) })

	h := NewReportHandler(env.runner, env.outputDir, env.uploadDir, zap.NewNop())
	env.router.POST("/api/v1/reports", h.Create)
	env.router.GET("/api/v1/reports/:name", h.Download)
	return env
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("audio", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func postReport(env testEnv, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var sessionFields = map[string]string{
	"practice_name": testutil.SampleSession.Practice,
	"patient_name":  testutil.SampleSession.Patient,
	"birth_date":    testutil.SampleSession.BirthDate,
	"consent":       "on",
}

func TestReportHandler_Create(t *testing.T) {
	env := setupTestRouter(t)
	var stagedPath string

	env.runner.On("Run", mock.Anything, mock.MatchedBy(func(in pipeline.SessionInput) bool {
		stagedPath = in.AudioPath
		content, err := os.ReadFile(in.AudioPath)
		return err == nil &&
			string(content) == "RIFF" &&
			filepath.Ext(in.AudioPath) == ".wav" &&
			in.PatientName == "Max Müller" &&
			in.PracticeName == "Hausarztpraxis Dr. Meier" &&
			in.BirthDate == "01.02.1960" &&
			in.Consent
	})).Return(&pipeline.Result{
		Report:   testutil.SampleReport,
		FilePath: filepath.Join(env.outputDir, "2026-10-19_Befund_Max_Müller.pdf"),
		Pages:    1,
	}, nil)

	body, contentType := multipartBody(t, sessionFields, "Aufnahme.WAV", []byte("RIFF"))
	w := postReport(env, body, contentType)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, testutil.SampleReport, resp["report"])
	assert.Equal(t, "2026-10-19_Befund_Max_Müller.pdf", resp["file_name"])
	assert.Equal(t, "/api/v1/reports/2026-10-19_Befund_Max_M%C3%BCller.pdf", resp["download_url"])
	assert.Equal(t, float64(1), resp["pages"])

	_, err := os.Stat(stagedPath)
	assert.True(t, os.IsNotExist(err), "staged upload should be removed")
}

func TestReportHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name           string
		fields         map[string]string
		fileName       string
		runErr         error
		runResult      *pipeline.Result
		expectRun      bool
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:           "consent missing",
			fields:         map[string]string{"patient_name": "Max Müller"},
			fileName:       "a.mp3",
			runErr:         apperrors.ErrConsentMissing,
			expectRun:      true,
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				assert.Equal(t, apperrors.ConsentWarning, body["message"])
			},
		},
		{
			name:           "audio missing",
			fields:         sessionFields,
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "is required", details["audio"])
			},
		},
		{
			name:           "unsupported file type",
			fields:         sessionFields,
			fileName:       "notes.txt",
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "unsupported file type", details["audio"])
			},
		},
		{
			name:           "transcription failed",
			fields:         sessionFields,
			fileName:       "a.mp3",
			runErr:         apperrors.NewPipelineError(apperrors.KindTranscriptionFailed, errors.New("401 Unauthorized")),
			expectRun:      true,
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_gateway", body["kind"])
				assert.Contains(t, body["message"], "401 Unauthorized")
			},
		},
		{
			name:           "rendering failed keeps report",
			fields:         sessionFields,
			fileName:       "a.mp3",
			runErr:         apperrors.NewPipelineError(apperrors.KindRenderingFailed, errors.New("disk full")),
			runResult:      &pipeline.Result{Report: testutil.SampleReport},
			expectRun:      true,
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Equal(t, testutil.SampleReport, details["report"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestRouter(t)
			if tt.expectRun {
				env.runner.On("Run", mock.Anything, mock.Anything).Return(tt.runResult, tt.runErr)
			}

			body, contentType := multipartBody(t, tt.fields, tt.fileName, []byte("ID3"))
			w := postReport(env, body, contentType)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, decode(t, w))

			entries, err := os.ReadDir(env.uploadDir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestReportHandler_Create_WithoutConsentSkipsUpload(t *testing.T) {
	env := setupTestRouter(t)
	env.runner.On("Run", mock.Anything, pipeline.SessionInput{PatientName: "Max"}).
		Return(nil, apperrors.ErrConsentMissing)

	body, contentType := multipartBody(t, map[string]string{"patient_name": "Max", "consent": "off"}, "a.mp3", []byte("ID3"))
	w := postReport(env, body, contentType)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReportHandler_Download(t *testing.T) {
	env := setupTestRouter(t)
	name := "2026-10-19_Befund_Max_Müller.pdf"
	require.NoError(t, os.WriteFile(filepath.Join(env.outputDir, name), []byte("%PDF-1.3"), 0644))

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, DownloadURL(name), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "%PDF-1.3", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing.pdf", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("not a pdf", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/.env", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("hidden file", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/..pdf", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("consultation.mp3"))
	assert.True(t, IsAudioFile("CONSULTATION.WAV"))
	assert.False(t, IsAudioFile("report.pdf"))
	assert.False(t, IsAudioFile("noextension"))
}
