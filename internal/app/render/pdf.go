// Package render lays out a clinical report and writes it as a PDF.
package render

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "DejaVu"
	titleSize  = 16
	bodySize   = 12
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
)

// Drawable replaces characters the PDF text encoding cannot carry. fpdf
// writes text as UTF-16 code units without surrogate pairs, so runes outside
// the Basic Multilingual Plane become U+FFFD.
func Drawable(text string) string {
	if !strings.ContainsFunc(text, outsideBMP) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if outsideBMP(r) {
			return utf8.RuneError
		}
		return r
	}, text)
}

func outsideBMP(r rune) bool {
	return r > 0xFFFF
}

func withoutPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// Document is the content of one report.
type Document struct {
	Practice  string
	Patient   string
	BirthDate string
	// Date is filled in by the renderer when empty.
	Date   string
	Report string
}

// Rendered describes a written report.
type Rendered struct {
	Path   string
	Pages  int
	Layout Layout
}

// Renderer writes a Document to storage.
type Renderer interface {
	Render(ctx context.Context, doc Document) (Rendered, error)
}

// PDFRenderer writes A4 PDF reports into a directory.
type PDFRenderer struct {
	outputDir string
	geometry  Geometry
	now       func() time.Time
}

// NewPDFRenderer creates a renderer writing into outputDir.
func NewPDFRenderer(outputDir string) *PDFRenderer {
	if outputDir == "" {
		outputDir = "."
	}
	return &PDFRenderer{
		outputDir: outputDir,
		geometry:  A4(),
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the report date.
func (r *PDFRenderer) WithClock(now func() time.Time) *PDFRenderer {
	r.now = now
	return r
}

// OutputDir returns the directory reports are written to.
func (r *PDFRenderer) OutputDir() string {
	return r.outputDir
}

// FileName returns the report file name for a date and patient.
func FileName(date, patient string) string {
	name := strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(patient)
	return fmt.Sprintf("%s_Befund_%s.pdf", date, name)
}

// Render lays out doc and saves it. A report for the same patient on the
// same day overwrites the previous file.
func (r *PDFRenderer) Render(ctx context.Context, doc Document) (Rendered, error) {
	if err := ctx.Err(); err != nil {
		return Rendered{}, err
	}

	if doc.Date == "" {
		doc.Date = r.now().Format("2006-01-02")
	}
	path := filepath.Join(r.outputDir, FileName(doc.Date, doc.Patient))
	doc.Practice = Drawable(doc.Practice)
	doc.Patient = Drawable(doc.Patient)
	doc.BirthDate = Drawable(doc.BirthDate)
	doc.Report = Drawable(doc.Report)

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("Documio", true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	if err := pdf.Error(); err != nil {
		return Rendered{}, fmt.Errorf("load fonts: %w", err)
	}

	setStyle := func(style Style) {
		if style == StyleTitle {
			pdf.SetFont(fontFamily, "B", titleSize)
			return
		}
		pdf.SetFont(fontFamily, "", bodySize)
	}
	measure := func(style Style, text string) float64 {
		setStyle(style)
		return pdf.GetStringWidth(text)
	}

	layout := Compose(doc, r.geometry, measure)

	page := 0
	for _, line := range layout.Lines {
		for page < line.Page {
			pdf.AddPage()
			page++
		}
		setStyle(line.Style)
		pdf.Text(line.X, line.Y, line.Text)
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return Rendered{}, fmt.Errorf("create output directory: %w", err)
	}
	// errors name the directory only, the file name carries the patient name
	file, err := os.Create(path)
	if err != nil {
		return Rendered{}, fmt.Errorf("create report in %s: %w", r.outputDir, withoutPath(err))
	}
	if err := pdf.OutputAndClose(file); err != nil {
		return Rendered{}, fmt.Errorf("write report in %s: %w", r.outputDir, withoutPath(err))
	}

	return Rendered{
		Path:   path,
		Pages:  pdf.PageCount(),
		Layout: layout,
	}, nil
}
