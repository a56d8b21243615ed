package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "documio/docs" // swagger spec
	"documio/internal/api/middleware"
	"documio/internal/api/v1/handlers"
	v1routes "documio/internal/api/v1/routes"
	"documio/internal/app/metrics"
	"documio/web"
	webhandlers "documio/web/handlers"
)

// Config represents API server configuration
type Config struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
	OutputDir    string
	UploadDir    string
	MaxUploadMB  int64
}

// Pipeline is what the HTTP surfaces need from the report pipeline
type Pipeline interface {
	handlers.ReportRunner
	webhandlers.Presenter
}

// Metrics exposes collectors and the run summary
type Metrics interface {
	Registry() *prometheus.Registry
	Summary() metrics.Summary
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new API server
func NewServer(config Config, pipeline Pipeline, m Metrics, logger *zap.Logger) (*Server, error) {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"runs":      m.Summary(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, v1routes.Dependencies{
			Runner:      pipeline,
			OutputDir:   config.OutputDir,
			UploadDir:   config.UploadDir,
			MaxUploadMB: config.MaxUploadMB,
			Logger:      logger,
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := web.Register(router, pipeline, config.UploadDir, config.MaxUploadMB<<20, logger); err != nil {
		return nil, fmt.Errorf("register form UI: %w", err)
	}

	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Start serves until Shutdown is called. It returns http.ErrServerClosed
// after a graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
		zap.String("output_dir", s.config.OutputDir),
	)
	return s.httpServer.ListenAndServe()
}

// Run starts the server and shuts it down when ctx is cancelled
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
