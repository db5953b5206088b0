package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/cloudstroke/internal/gesture"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered gestures",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) error {
	gestures, err := gestures.LoadGestures()
	if err != nil {
		return errors.Wrap(err, "failed to load gestures")
	}

	out := cmd.OutOrStdout()
	if len(gestures) == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}
	fmt.Fprintln(out, "Registered gestures:")
	for _, g := range gestures {
		fmt.Fprintf(out, "   %s (%d templates)\n", g.Command, len(g.Templates))
	}
	return nil
}
