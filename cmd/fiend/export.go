// ABOUTME: CLI commands for exporting and importing the journal.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportExercise string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the journal",
	Long: `Export the journal in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML grouped by exercise with stats
  markdown   One Markdown table per exercise

OPTIONS:

  --output, -o     Write to file instead of stdout
  --exercise, -e   Only this exercise (markdown only)

EXAMPLES:

  fiend export json -o backup.json
  fiend export yaml
  fiend export markdown -e Squat`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		render, ok := exporters[args[0]]
		if !ok {
			return fmt.Errorf("unknown format %q (use json, yaml, or markdown)", args[0])
		}
		data, err := render(cmd.Context())
		if err != nil {
			return fmt.Errorf("export %s: %w", args[0], err)
		}
		return writeExport(cmd.OutOrStdout(), data)
	},
}

type exportFunc func(ctx context.Context) ([]byte, error)

var exporters = map[string]exportFunc{
	"json": func(ctx context.Context) ([]byte, error) { return repo.ExportJSON(ctx) },
	"yaml": func(ctx context.Context) ([]byte, error) { return repo.ExportYAML(ctx) },
	"markdown": func(ctx context.Context) ([]byte, error) {
		var exercise *string
		if exportExercise != "" {
			exercise = &exportExercise
		}
		md, err := repo.ExportMarkdown(ctx, exercise)
		return []byte(md), err
	},
}

// writeExport sends data to --output when given, otherwise to out.
func writeExport(out io.Writer, data []byte) error {
	if exportOutput == "" {
		_, err := fmt.Fprintln(out, string(data))
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	color.New(color.FgGreen).Fprintf(out, "✓ Exported to %s\n", exportOutput)
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import a JSON export",
	Long: `Import entries and the profile from a JSON export.

Entries are added as new rows with fresh IDs, so importing the same file
twice duplicates them. If the file holds a profile it replaces the current one.

Pass - to read the export from stdin.

EXAMPLES:

  fiend import backup.json
  fiend export json | fiend --db other.db import -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		var data []byte
		var err error
		if filename == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(filename)
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", filename, err)
		}

		summary, err := repo.ImportJSON(cmd.Context(), data)
		switch {
		case err != nil && summary != nil && summary.Workouts > 0:
			return fmt.Errorf("import stopped after %d entries: %w", summary.Workouts, err)
		case err != nil:
			return fmt.Errorf("import %s: %w", filename, err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Imported %d entries from %s\n", summary.Workouts, filename)
		if summary.Profile {
			fmt.Fprintln(out, "  Profile replaced")
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportExercise, "exercise", "e", "", "only this exercise (markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
