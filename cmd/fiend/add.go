// ABOUTME: CLI commands for adding and editing workout entries.
// ABOUTME: Prompts for each field when run without arguments on a terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitnessfiend/internal/journal"
	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addNotes  string
	editNotes string
)

// isInteractive reports whether stdin is a terminal. Tests replace it.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var addCmd = &cobra.Command{
	Use:     "add [exercise weight reps sets]",
	Aliases: []string{"a"},
	Short:   "Log a workout entry",
	Long: `Log one exercise with weight (lbs), reps, and sets.

Run with no arguments on a terminal to be prompted for each field.
Values that are not whole numbers are stored as 0.

Examples:
  fiend add Squat 135 5 3
  fiend add "Front Squat" 95 8 3 -n "slow eccentric"
  fiend add`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args) == 4 {
			return nil
		}
		return fmt.Errorf("add takes <exercise> <weight> <reps> <sets>, got %d argument(s)", len(args))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in := entryInput{notes: addNotes}
		if len(args) == 0 {
			if !isInteractive() {
				return errors.New("add needs <exercise> <weight> <reps> <sets> when stdin is not a terminal")
			}
			var err error
			in, err = promptEntry(cmd.InOrStdin(), cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
		} else {
			in.exercise, in.weight, in.reps, in.sets = args[0], args[1], args[2], args[3]
		}

		warnCoerced(cmd.ErrOrStderr(), in)

		v, err := journ.Add(cmd.Context(), in.exercise, in.exercise, in.weight, in.reps, in.sets, in.notes)
		if err != nil && !errors.Is(err, journal.ErrRefreshFailed) {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Logged %s\n", v.Changed.Exercise)
		printEntry(out, v.Changed)
		printStats(out, v.Stats)
		return err
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> [exercise weight reps sets]",
	Short: "Overwrite a workout entry",
	Long: `Overwrite every field of an existing entry.

With only an id on a terminal, each field is prompted with its current value
as the default. Notes are replaced by --notes (empty clears them).

Examples:
  fiend edit 3 Squat 140 5 3
  fiend edit 3 Squat 140 5 3 -n "moved well"
  fiend edit 3`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 || len(args) == 5 {
			return nil
		}
		return fmt.Errorf("edit takes <id> [<exercise> <weight> <reps> <sets>], got %d argument(s)", len(args))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		in := entryInput{notes: editNotes}
		if len(args) == 1 {
			if !isInteractive() {
				return errors.New("edit needs <exercise> <weight> <reps> <sets> when stdin is not a terminal")
			}
			current, err := repo.GetWorkout(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("workout %d: %w", id, err)
			}
			in, err = promptEntry(cmd.InOrStdin(), cmd.OutOrStdout(), current)
			if err != nil {
				return err
			}
		} else {
			in.exercise, in.weight, in.reps, in.sets = args[1], args[2], args[3], args[4]
		}

		warnCoerced(cmd.ErrOrStderr(), in)

		v, err := journ.Edit(cmd.Context(), in.exercise, id, in.exercise, in.weight, in.reps, in.sets, in.notes)
		if err != nil && !errors.Is(err, journal.ErrRefreshFailed) {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Updated %d\n", id)
		printEntry(out, v.Changed)
		printStats(out, v.Stats)
		return err
	},
}

// entryInput holds the raw text of one entry before coercion.
type entryInput struct {
	exercise, weight, reps, sets, notes string
}

// promptEntry asks for each field on out and reads answers from in. With a
// non-nil current entry, an empty answer keeps the current value.
func promptEntry(in io.Reader, out io.Writer, current *models.WorkoutEntry) (entryInput, error) {
	reader := bufio.NewReader(in)
	defaults := entryInput{}
	if current != nil {
		defaults = entryInput{
			exercise: current.Exercise,
			weight:   strconv.Itoa(current.Weight),
			reps:     strconv.Itoa(current.Reps),
			sets:     strconv.Itoa(current.Sets),
			notes:    current.Notes,
		}
	}

	var result entryInput
	fields := []struct {
		label string
		def   string
		dst   *string
	}{
		{"Exercise", defaults.exercise, &result.exercise},
		{"Weight (lbs)", defaults.weight, &result.weight},
		{"Reps", defaults.reps, &result.reps},
		{"Sets", defaults.sets, &result.sets},
		{"Notes", defaults.notes, &result.notes},
	}

	faint := color.New(color.Faint)
	for _, f := range fields {
		if f.def != "" {
			fmt.Fprintf(out, "%s %s: ", f.label, faint.Sprintf("[%s]", f.def))
		} else {
			fmt.Fprintf(out, "%s: ", f.label)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return entryInput{}, fmt.Errorf("failed to read %s: %w", strings.ToLower(f.label), err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			line = f.def
		}
		*f.dst = line
	}

	if result.exercise == "" {
		return entryInput{}, journal.ErrExerciseRequired
	}
	return result, nil
}

// warnCoerced notes any number that will be stored as 0.
func warnCoerced(w io.Writer, in entryInput) {
	for _, f := range []struct{ name, value string }{
		{"weight", in.weight}, {"reps", in.reps}, {"sets", in.sets},
	} {
		if models.CoerceInt(f.value) == 0 && strings.TrimSpace(f.value) != "0" {
			color.New(color.FgYellow).Fprintf(w, "⚠ %s %q is not a whole number, storing 0\n", f.name, f.value)
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid workout id: %s", s)
	}
	return id, nil
}

func init() {
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "notes for the entry")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "notes for the entry (replaces existing)")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
}
