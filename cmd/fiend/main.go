// ABOUTME: Entry point for the fiend CLI.
// ABOUTME: Invokes the root Cobra command.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs the root command. The session is closed here as well because
// cobra skips PersistentPostRunE when a command fails.
func Execute() error {
	err := rootCmd.Execute()
	return multierr.Append(err, closeSession(context.Background()))
}
