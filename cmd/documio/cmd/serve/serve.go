package serve

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"documio/internal/api/server"
	"documio/internal/app"
)

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides settings)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides settings)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and the JSON API",
	Long: `Start the web form and the JSON API

- GET  /                      upload form
- POST /api/v1/reports        create a report (multipart)
- GET  /api/v1/reports/:name  download a report
- GET  /health, /metrics, /swagger/index.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cmd.Flag("config").Value.String()
		verbose := cmd.Flag("verbose").Value.String() == "true"

		rt, err := app.LoadRuntime(configPath, verbose)
		if err != nil {
			return err
		}
		defer rt.Logger.Sync()

		s := rt.Settings.Server
		if host != "" {
			s.Host = host
		}
		if port != "" {
			s.Port = port
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := app.InitializeApplication(ctx, rt.Settings, rt.Keys, rt.Logger, nil)
		if err != nil {
			rt.Logger.Error("failed to initialize application", zap.Error(err))
			return err
		}

		srv, err := server.NewServer(server.Config{
			Host:         s.Host,
			Port:         s.Port,
			ReadTimeout:  s.ReadTimeout(),
			WriteTimeout: s.WriteTimeout(),
			IdleTimeout:  s.IdleTimeout(),
			Environment:  s.Environment,
			OutputDir:    rt.Settings.Output.Dir,
			UploadDir:    filepath.Join(os.TempDir(), "documio-uploads"),
			MaxUploadMB:  s.MaxUploadMB,
		}, application.Pipeline, application.Metrics, rt.Logger)
		if err != nil {
			return err
		}

		return srv.Run(ctx, 10*time.Second)
	},
}
