// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the workout journal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitnessfiend/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout; logs go to stderr or the log file.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fiend": {
        "command": "fiend",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_workout      Log an exercise with weight, reps, and sets
  update_workout   Overwrite an existing entry
  delete_workout   Delete an entry by ID
  list_workouts    List entries, optionally for one exercise
  exercise_stats   Max weight, avg reps, avg sets for an exercise
  list_exercises   Distinct exercise names
  get_profile      Read the lifter profile
  set_profile      Update profile fields

AVAILABLE RESOURCES:

  fiend://journal   Every entry
  fiend://summary   Per-exercise stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, version)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
