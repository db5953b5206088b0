package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/cloudstroke/internal/gesture"
)

var removeCmd = &cobra.Command{
	Use:   "remove <command>",
	Short: "Remove a gesture by command name",
	Args:  cobra.ExactArgs(1),
	RunE:  removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) error {
	if err := gestures.RemoveGesture(args[0]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
	return nil
}
