package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/cloudstroke/internal/capture"
	"github.com/ThatOtherAndrew/cloudstroke/internal/config"
	"github.com/ThatOtherAndrew/cloudstroke/internal/execute"
	gestures "github.com/ThatOtherAndrew/cloudstroke/internal/gesture"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run <recording>",
	Short: "Recognise a recorded stroke and run its command",
	Args:  cobra.ExactArgs(1),
	RunE:  Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "only print the recognised command")
}

func Run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(logger)
	if err != nil {
		return errors.Wrap(err, "failed to load settings")
	}

	library, err := gestures.LoadGestures()
	if err != nil {
		return errors.Wrap(err, "failed to load gestures")
	}
	logger.Debugw("loaded gestures", "count", len(library))

	points, err := capture.ReadFile(args[0])
	if err != nil {
		return err
	}
	points = capture.Thin(points, settings.MinSpacing)

	recognizer := execute.New(settings, library, logger)
	var res execute.Result
	if dryRun {
		res, err = recognizer.Recognize(points)
	} else {
		res, err = recognizer.RecognizeAndExecute(points)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Matched {
		fmt.Fprintf(out, "No confident match (best: %s, distance: %.3f)\n", res.Command, res.Distance)
		return nil
	}
	fmt.Fprintf(out, "Matched gesture: %s (distance: %.3f)\n", res.Command, res.Distance)
	return nil
}
