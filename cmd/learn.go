package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/cloudstroke/internal/capture"
	"github.com/ThatOtherAndrew/cloudstroke/internal/config"
	gestures "github.com/ThatOtherAndrew/cloudstroke/internal/gesture"
	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
	"github.com/ThatOtherAndrew/cloudstroke/internal/stroke"
)

var learnCmd = &cobra.Command{
	Use:   "learn <command> <recording>...",
	Short: "Learn a new gesture for the specified command",
	Long: `Learn a new gesture for the specified command.

Each recording is a JSON file of raw points ("-" reads standard input once).
At least as many recordings as the "samples" setting are required.`,
	Args: cobra.MinimumNArgs(2),
	RunE: learnGesture,
}

func init() {
	rootCmd.AddCommand(learnCmd)
}

func learnGesture(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(logger)
	if err != nil {
		return errors.Wrap(err, "failed to load settings")
	}

	command, recordings := args[0], args[1:]
	if len(recordings) < settings.Samples {
		return errors.Errorf("need %d recordings for %q, got %d", settings.Samples, command, len(recordings))
	}

	templates := make([]models.Gesture, 0, len(recordings))
	for i, path := range recordings {
		points, err := capture.ReadFile(path)
		if err != nil {
			return err
		}
		points = capture.Thin(points, settings.MinSpacing)
		cloud, err := stroke.BuildCloud(points)
		if err != nil {
			return errors.Wrap(err, path)
		}
		templates = append(templates, cloud)
		logger.Infow("captured gesture", "sample", i+1, "of", len(recordings), "points", len(points))
	}

	if err := gestures.SaveGesture(command, templates); err != nil {
		return errors.Wrap(err, "failed to save gesture")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Gesture saved for command:", command)
	return nil
}
