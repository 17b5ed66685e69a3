// ABOUTME: CLI command to save a new memo
// ABOUTME: Handles text from argument, file, or stdin and prints the save result
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chottokun/mpc-memos/internal/models"
)

var (
	saveSession    string
	saveSummary    string
	saveKeywords   []string
	saveImportance float64
	saveFile       string
)

// NewSaveCmd creates the save command
func NewSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [text]",
		Short: "Save a new memo",
		Long: `Save a new memo from text, file, or stdin.

The text (or summary, when given) is chunked, embedded, and stored for
semantic search. The raw text is never persisted.

Examples:
  memos save --session work "Met with Alice about project X"
  memos save --session work --file notes.txt
  memos save --session work --keywords meeting,project-x "Discussed timeline"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSave,
	}

	cmd.Flags().StringVar(&saveSession, "session", "", "Session grouping label (required)")
	cmd.Flags().StringVar(&saveSummary, "summary", "", "Summary to embed instead of the text")
	cmd.Flags().StringSliceVar(&saveKeywords, "keywords", []string{}, "Keywords for the memo (comma-separated)")
	cmd.Flags().Float64Var(&saveImportance, "importance", 0.0, "Importance score")
	cmd.Flags().StringVar(&saveFile, "file", "", "Read memo text from file")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	var text string
	if saveFile != "" {
		data, err := os.ReadFile(saveFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	service, _, shutdown, err := buildService()
	if err != nil {
		return err
	}
	defer shutdown()

	result, err := service.SaveMemo(cmd.Context(), models.SaveRequest{
		SessionID:  saveSession,
		Text:       text,
		Summary:    saveSummary,
		Keywords:   saveKeywords,
		Importance: saveImportance,
	})
	if err != nil {
		return fmt.Errorf("saving memo: %w", err)
	}

	return printResult(cmd, result)
}
