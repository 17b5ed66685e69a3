// ABOUTME: CLI command to fetch all chunks of a memo by id
// ABOUTME: An unknown memo id prints empty lists, not an error
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCmd creates the get command
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <memo-id>",
		Short: "Get a memo by id",
		Long: `Get the stored chunks and metadata for a memo id.

Examples:
  memos get 2f1a9c3e-6d4b-4a8e-9c7f-0b1d2e3f4a5b`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	service, _, shutdown, err := buildService()
	if err != nil {
		return err
	}
	defer shutdown()

	result, err := service.GetMemo(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting memo: %w", err)
	}
	return printResult(cmd, result)
}
