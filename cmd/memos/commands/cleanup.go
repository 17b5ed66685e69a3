// ABOUTME: CLI command to sweep expired memos
// ABOUTME: Removes every memo past its TTL and reports how many were removed
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCleanupCmd creates the cleanup command
func NewCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired memos",
		Long: `Remove every memo whose TTL has lapsed.

Expiry is lazy: memos past their expiry stay in the store until this
sweep runs. Intended for cron or manual use.

Examples:
  memos cleanup`,
		Args: cobra.NoArgs,
		RunE: runCleanup,
	}

	return cmd
}

func runCleanup(cmd *cobra.Command, args []string) error {
	service, _, shutdown, err := buildService()
	if err != nil {
		return err
	}
	defer shutdown()

	result, err := service.CleanupExpired(cmd.Context())
	if err != nil {
		return fmt.Errorf("cleaning up memos: %w", err)
	}
	return printResult(cmd, result)
}
