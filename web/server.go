// Package web serves the HTML form for creating reports.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"documio/internal/api/middleware"
	"documio/web/handlers"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Register installs the form pages and their static assets on router.
// Submissions larger than maxBodyBytes are rejected; zero disables the limit.
func Register(router *gin.Engine, presenter handlers.Presenter, uploadDir string, maxBodyBytes int64, logger *zap.Logger) error {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	router.StaticFS("/static", http.FS(static))

	form := handlers.NewFormHandler(presenter, uploadDir, logger)
	router.GET("/", form.Show)
	router.POST("/submit", middleware.MaxBodySize(maxBodyBytes), form.Submit)
	return nil
}
