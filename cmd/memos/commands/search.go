// ABOUTME: CLI command to search memos by semantic similarity
// ABOUTME: Prints ranked chunks with metadata and cosine distance
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchNResults int

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memos",
		Long: `Search memos by semantic similarity to a query string.

Results are ranked by ascending cosine distance (closest first).

Examples:
  memos search "python programming"
  memos search --n-results 10 "machine learning"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchNResults, "n-results", 0, "Number of results, 1-50 (0 = configured default)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}
	if searchNResults != 0 {
		if err := validateNResults(searchNResults); err != nil {
			return err
		}
	}

	service, _, shutdown, err := buildService()
	if err != nil {
		return err
	}
	defer shutdown()

	result, err := service.Search(cmd.Context(), query, searchNResults)
	if err != nil {
		return fmt.Errorf("searching memos: %w", err)
	}

	if len(result.Results) == 0 && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "No memos found for query: %s\n", query)
	}
	return printResult(cmd, result)
}
