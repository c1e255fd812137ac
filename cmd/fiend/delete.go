// ABOUTME: CLI command for deleting workout entries.
// ABOUTME: Deletion is by numeric ID and is idempotent.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitnessfiend/internal/journal"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout entry",
	Long: `Delete a workout entry by its ID.

The ID is shown in the first column of 'fiend list' output.
Deleting an ID that does not exist is not an error.

CAUTION:

  This permanently deletes the entry. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		v, err := journ.Remove(cmd.Context(), "", id)
		if err != nil && !errors.Is(err, journal.ErrRefreshFailed) {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgYellow).Fprintf(out, "✗ Deleted %d\n", id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %d entries remain\n", len(v.Entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
