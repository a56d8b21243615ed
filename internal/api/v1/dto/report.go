package dto

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"documio/internal/api/errors"
)

// consentValues are the checkbox values read as consent given
var consentValues = []string{"on", "true", "1", "yes"}

// CreateReportRequest holds the form fields of a report submission. The
// audio file is sent as the multipart part "audio".
type CreateReportRequest struct {
	PracticeName string `form:"practice_name" binding:"max=200"`
	PatientName  string `form:"patient_name" binding:"max=200"`
	BirthDate    string `form:"birth_date" binding:"max=32"`
	Consent      string `form:"consent" binding:"max=8"`
}

// HasConsent reports whether the consent checkbox was ticked
func (r *CreateReportRequest) HasConsent() bool {
	return lo.Contains(consentValues, strings.ToLower(strings.TrimSpace(r.Consent)))
}

// ReportResponse is returned for a written report
type ReportResponse struct {
	Report      string `json:"report"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
	Pages       int    `json:"pages"`
}

// ReportFileURI addresses a written report by file name
type ReportFileURI struct {
	Name string `uri:"name" binding:"required,endswith=.pdf"`
}

// Validate rejects names that would leave the output directory
func (r *ReportFileURI) Validate() error {
	if filepath.Base(r.Name) != r.Name || strings.HasPrefix(r.Name, ".") || strings.ContainsAny(r.Name, `/\`) {
		return errors.NewBadRequestError("Invalid report file name")
	}
	return nil
}
