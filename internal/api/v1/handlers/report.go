package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "documio/internal/api/errors"
	"documio/internal/api/middleware"
	"documio/internal/api/v1/dto"
	"documio/internal/app/pipeline"
)

// ReportRunner runs one submission through the pipeline
type ReportRunner interface {
	Run(ctx context.Context, in pipeline.SessionInput) (*pipeline.Result, error)
}

// ReportHandler handles report-related API endpoints
type ReportHandler struct {
	runner    ReportRunner
	outputDir string
	uploadDir string
	logger    *zap.Logger
}

// NewReportHandler creates a new report handler. Generated PDFs are served
// from outputDir; uploads are staged in uploadDir.
func NewReportHandler(runner ReportRunner, outputDir, uploadDir string, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		runner:    runner,
		outputDir: outputDir,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// DownloadURL returns the API path that serves the report at path
func DownloadURL(path string) string {
	return "/api/v1/reports/" + url.PathEscape(filepath.Base(path))
}

// Create handles POST /api/v1/reports
//
// @Summary Create a clinical report from a consultation recording
// @Description Transcribes the uploaded audio, generates a structured German report and renders it as PDF. Requires consent.
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Consultation recording (MP3 or WAV)"
// @Param practice_name formData string false "Practice name"
// @Param patient_name formData string false "Patient name"
// @Param birth_date formData string false "Birth date (TT.MM.JJJJ)"
// @Param consent formData string true "GDPR consent (on, true, 1, yes)"
// @Success 201 {object} dto.ReportResponse "Report created"
// @Failure 422 {object} errors.APIError "Validation error or consent missing"
// @Failure 502 {object} errors.APIError "Transcription or generation service failed"
// @Failure 500 {object} errors.APIError "Rendering failed, details.report holds the generated text"
// @Router /reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	in := pipeline.SessionInput{
		PracticeName: req.PracticeName,
		PatientName:  req.PatientName,
		BirthDate:    req.BirthDate,
		Consent:      req.HasConsent(),
	}

	if in.Consent {
		header, err := c.FormFile("audio")
		if err != nil {
			middleware.HandleError(c, apierrors.NewValidationError("Validation failed", map[string]string{
				"audio": "is required",
			}))
			return
		}
		if !IsAudioFile(header.Filename) {
			middleware.HandleError(c, apierrors.NewValidationError("Validation failed", map[string]string{
				"audio": "unsupported file type",
			}))
			return
		}

		path, err := SaveUpload(c, header, h.uploadDir)
		if err != nil {
			h.logger.Error("failed to stage upload", zap.Error(err))
			middleware.HandleError(c, apierrors.NewInternalError("Failed to store upload"))
			return
		}
		defer os.Remove(path)
		in.AudioPath = path
	}

	result, err := h.runner.Run(c.Request.Context(), in)
	if err != nil {
		report := ""
		if result != nil {
			report = result.Report
		}
		h.logger.Warn("report pipeline failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		middleware.HandleError(c, apierrors.FromPipeline(err, report))
		return
	}

	c.JSON(http.StatusCreated, dto.ReportResponse{
		Report:      result.Report,
		FileName:    filepath.Base(result.FilePath),
		DownloadURL: DownloadURL(result.FilePath),
		Pages:       result.Pages,
	})
}

// Download handles GET /api/v1/reports/:name
//
// @Summary Download a generated report
// @Tags reports
// @Produce application/pdf
// @Param name path string true "Report file name, e.g. 2026-10-19_Befund_Max_Müller.pdf"
// @Success 200 {file} file "PDF report"
// @Failure 400 {object} errors.APIError "Invalid file name"
// @Failure 404 {object} errors.APIError "Report not found"
// @Router /reports/{name} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	var uri dto.ReportFileURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		middleware.HandleError(c, err)
		return
	}

	path := filepath.Join(h.outputDir, uri.Name)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		middleware.HandleError(c, apierrors.NewNotFoundError("Report"))
		return
	}
	if err != nil {
		middleware.HandleError(c, apierrors.NewInternalError("Failed to read report"))
		return
	}

	c.FileAttachment(path, uri.Name)
}
