// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/runtime"
	"pushit.dev/pushit/internal/tui"
)

// Run builds a runtime context for the current directory and passes it to fn.
// Output goes to the command's writer and answers come from its reader when
// there is no terminal.
func Run(cmd *cobra.Command, configPath string, fn func(ctx *runtime.Context) error) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), tui.GetLogFilePath())
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer func() { _ = splog.Close() }()

	ctx, err := runtime.GetContext(workDir, configPath, splog, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return fn(ctx)
}
