package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"documio/internal/app"
	"documio/internal/app/cli"
	apperrors "documio/internal/app/errors"
	"documio/internal/app/pipeline"
)

var (
	audioPath     string
	practiceName  string
	patientName   string
	birthDate     string
	consent       bool
	forceProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&audioPath, "audio", "a", "", "consultation recording (mp3 or wav)")
	Cmd.Flags().StringVar(&practiceName, "practice", "", "practice name")
	Cmd.Flags().StringVar(&patientName, "patient", "", "patient name")
	Cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date (TT.MM.JJJJ)")
	Cmd.Flags().BoolVar(&consent, "consent", false, "the patient gave GDPR consent to the analysis")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show stage progress even when stderr is not a terminal")
}

// errAudioRequired is checked after consent so a run without consent always
// ends with the consent warning.
var errAudioRequired = errors.New("--audio is required")

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Create one report from a recording",
	Long: `Create one report from a recording

- Transcribe the recording
- Generate the four-section report
- Write {date}_Befund_{patient}.pdf into the output directory

Without --consent nothing is sent to any service and --audio may be
omitted.`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cmd.Flag("config").Value.String()
		verbose := cmd.Flag("verbose").Value.String() == "true"

		rt, err := app.LoadRuntime(configPath, verbose)
		if err != nil {
			return err
		}
		defer rt.Logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		progress := cli.NewStageProgress(cli.ProgressConfig{
			Enabled: cli.ShouldShowProgress(forceProgress),
			Writer:  cmd.ErrOrStderr(),
		})
		defer progress.Shutdown()

		application, err := app.InitializeApplication(ctx, rt.Settings, rt.Keys, rt.Logger, app.Observers{progress})
		if err != nil {
			rt.Logger.Error("failed to initialize application", zap.Error(err))
			return err
		}

		if consent && audioPath == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), apperrors.FailurePrefix+errAudioRequired.Error())
			return errAudioRequired
		}

		result, err := application.Pipeline.Run(ctx, pipeline.SessionInput{
			AudioPath:    audioPath,
			PracticeName: practiceName,
			PatientName:  patientName,
			BirthDate:    birthDate,
			Consent:      consent,
		})
		progress.Wait()

		out := cmd.OutOrStdout()
		if err != nil {
			rt.Logger.Error("report failed", zap.String("kind", apperrors.KindOf(err).String()), zap.Error(err))
			fmt.Fprintln(cmd.ErrOrStderr(), apperrors.DisplayMessage(err))
			if result != nil && result.Report != "" {
				fmt.Fprintln(out, result.Report)
			}
			return err
		}

		fmt.Fprintln(out, result.Report)
		fmt.Fprintf(out, "\nPDF: %s (%d Seiten)\n", result.FilePath, result.Pages)
		return nil
	},
}
