// ABOUTME: CLI command to delete all chunks of a memo by id
// ABOUTME: Deletion is idempotent; unknown ids still report success
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <memo-id>",
		Short: "Delete a memo by id",
		Long: `Delete every stored chunk of a memo.

Succeeds even when the memo does not exist.

Examples:
  memos delete 2f1a9c3e-6d4b-4a8e-9c7f-0b1d2e3f4a5b`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	service, _, shutdown, err := buildService()
	if err != nil {
		return err
	}
	defer shutdown()

	result, err := service.DeleteMemo(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("deleting memo: %w", err)
	}
	return printResult(cmd, result)
}
