package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"documio/cmd/documio/cmd/report"
	"documio/cmd/documio/cmd/serve"
	"documio/cmd/documio/cmd/version"
	"documio/internal/config"
)

var (
	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "documio",
	Short: "Turn a recorded consultation into a structured clinical report PDF",
	Long: `Documio turns a recorded doctor-patient consultation into a structured
German clinical report.

- The recording is transcribed with OpenAI Whisper
- A language model writes the report in four sections
- The report is saved as an A4 PDF named {date}_Befund_{patient}.pdf

Processing requires the patient's GDPR consent.`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(report.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "development logging")
}
