// ABOUTME: CLI commands for exercise stats and the exercise name list.
// ABOUTME: Stats are rounded to two decimals for display.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <exercise>",
	Short: "Show max weight, average reps, and average sets for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := repo.ExerciseStats(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if stats == nil {
			fmt.Fprintf(out, "No entries for %s.\n", args[0])
			return nil
		}
		printStats(out, stats.Rounded())
		return nil
	},
}

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the distinct exercise names",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := repo.ListExercises(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(names) == 0 {
			fmt.Fprintln(out, "No exercises logged.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exercisesCmd)
}
