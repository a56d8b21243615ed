package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"documio/internal/api/middleware"
	"documio/internal/api/v1/handlers"
)

// Dependencies holds what the v1 handlers need
type Dependencies struct {
	Runner      handlers.ReportRunner
	OutputDir   string
	UploadDir   string
	MaxUploadMB int64
	Logger      *zap.Logger
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	reportHandler := handlers.NewReportHandler(deps.Runner, deps.OutputDir, deps.UploadDir, deps.Logger)

	reports := router.Group("/reports")
	{
		reports.POST("", middleware.MaxBodySize(deps.MaxUploadMB<<20), reportHandler.Create)
		reports.GET("/:name", reportHandler.Download)
	}
}
