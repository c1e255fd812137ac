// ABOUTME: CLI command for listing workout entries.
// ABOUTME: Supports an exact exercise filter and shared entry/stats printers.
package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/spf13/cobra"
)

var listExercise string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workout entries",
	Long: `List entries from your lifting journal, oldest first.

OUTPUT FORMAT:

  Each line shows: ID  EXERCISE  WEIGHT  REPS×SETS  (NOTES)

FILTERING:

  Use --exercise to show one exercise. The match is exact and
  case-sensitive, so "Squat" and "squat" are different exercises.
  A filtered list ends with that exercise's stats.

EXAMPLES:

  fiend list                 # Every entry
  fiend list -e Squat        # Squat entries with stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := journ.Show(cmd.Context(), listExercise)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(v.Entries) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}

		for _, e := range v.Entries {
			printEntry(out, e)
		}
		printStats(out, v.Stats)
		return nil
	},
}

func printEntry(w io.Writer, e *models.WorkoutEntry) {
	faint := color.New(color.Faint)
	notes := ""
	if e.Notes != "" {
		notes = faint.Sprintf(" (%s)", truncate(e.Notes, 30))
	}
	fmt.Fprintf(w, "%s %s %s %s%s\n",
		faint.Sprint(padRight(fmt.Sprintf("%d", e.ID), 5)),
		padRight(e.Exercise, 20),
		padRight(fmt.Sprintf("%d lbs", e.Weight), 9),
		fmt.Sprintf("%d×%d", e.Reps, e.Sets),
		notes)
}

func printStats(w io.Writer, s *models.ExerciseStats) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "%s: max %d lbs · avg %.2f reps · avg %.2f sets (%d entries)\n",
		color.New(color.Bold).Sprint(s.Exercise), s.MaxWeight, s.AvgReps, s.AvgSets, s.Count)
}

// truncate shortens s to maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	listCmd.Flags().StringVarP(&listExercise, "exercise", "e", "", "only entries for this exercise")
	rootCmd.AddCommand(listCmd)
}
