package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "documio/internal/api/errors"
	"documio/internal/api/middleware"
	"documio/internal/api/v1/dto"
	apihandlers "documio/internal/api/v1/handlers"
	apperrors "documio/internal/app/errors"
	"documio/internal/app/pipeline"
)

const formTemplate = "index.html"

// Presenter runs a submission and returns the text to show and the PDF path
type Presenter interface {
	Present(ctx context.Context, in pipeline.SessionInput) (string, string)
}

// FormView is the data rendered into the form template
type FormView struct {
	Practice    string
	Patient     string
	BirthDate   string
	Consent     bool
	Output      string
	DownloadURL string
	FileName    string
}

// FormHandler serves the report form
type FormHandler struct {
	presenter Presenter
	uploadDir string
	logger    *zap.Logger
}

func NewFormHandler(presenter Presenter, uploadDir string, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		presenter: presenter,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Show renders the empty form
func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, FormView{})
}

// Submit runs the pipeline for the posted form and renders the outcome
// under it. A missing recording is passed on and reported by the
// transcription step.
func (h *FormHandler) Submit(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		c.HTML(http.StatusUnprocessableEntity, formTemplate, FormView{
			Practice:  req.PracticeName,
			Patient:   req.PatientName,
			BirthDate: req.BirthDate,
			Output:    apperrors.FailurePrefix + validationMessage(err),
		})
		return
	}

	view := FormView{
		Practice:  req.PracticeName,
		Patient:   req.PatientName,
		BirthDate: req.BirthDate,
		Consent:   req.HasConsent(),
	}
	in := pipeline.SessionInput{
		PracticeName: req.PracticeName,
		PatientName:  req.PatientName,
		BirthDate:    req.BirthDate,
		Consent:      view.Consent,
	}

	if in.Consent {
		if header, err := c.FormFile("audio"); err == nil {
			path, err := apihandlers.SaveUpload(c, header, h.uploadDir)
			if err != nil {
				h.logger.Error("failed to stage upload", zap.Error(err))
				view.Output = apperrors.FailurePrefix + err.Error()
				c.HTML(http.StatusInternalServerError, formTemplate, view)
				return
			}
			defer os.Remove(path)
			in.AudioPath = path
		}
	}

	text, path := h.presenter.Present(c.Request.Context(), in)
	view.Output = text
	if path != "" {
		view.DownloadURL = apihandlers.DownloadURL(path)
		view.FileName = filepath.Base(path)
	} else if strings.HasPrefix(text, apperrors.FailurePrefix) {
		h.logger.Warn("report pipeline failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("message", text),
		)
	}

	c.HTML(http.StatusOK, formTemplate, view)
}

func validationMessage(err error) string {
	apiErr, ok := err.(*apierrors.APIError)
	if !ok || len(apiErr.Details) == 0 {
		return err.Error()
	}

	fields := make([]string, 0, len(apiErr.Details))
	for field, msg := range apiErr.Details {
		fields = append(fields, field+" "+msg)
	}
	sort.Strings(fields)
	return strings.Join(fields, ", ")
}
