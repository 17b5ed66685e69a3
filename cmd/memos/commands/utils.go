// ABOUTME: Shared bootstrap and output helpers for CLI commands
// ABOUTME: Builds the memo service from config and renders results
package commands

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/chottokun/mpc-memos/internal/config"
	"github.com/chottokun/mpc-memos/internal/core"
	"github.com/chottokun/mpc-memos/internal/llm"
	"github.com/chottokun/mpc-memos/internal/pool"
	"github.com/chottokun/mpc-memos/internal/storage"
)

// buildService constructs the memo service and its collaborators from
// the environment. The returned shutdown func drains the worker pool
// and closes the store.
func buildService() (*core.MemoService, *config.Config, func(), error) {
	// Load .env file if it exists (for API keys)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	var embedder core.Embedder
	if cfg.OpenAIKey != "" {
		client, err := llm.NewOpenAIClient(&llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			BaseURL:        cfg.OpenAIBaseURL,
			EmbeddingModel: cfg.EmbeddingModel,
			Timeout:        cfg.Timeout,
		})
		if err != nil {
			_ = store.Close()
			return nil, nil, nil, fmt.Errorf("initializing embedder: %w", err)
		}
		embedder = client
	} else if !quiet {
		log.Println("Warning: OPENAI_API_KEY not set - save and search will not work")
	}

	workers := pool.New(cfg.EmbedWorkers)
	service := core.NewMemoService(store, embedder, workers, core.ServiceConfig{
		MaxChunkChars:   cfg.MaxChunkChars,
		NResultsDefault: cfg.NResultsDefault,
		TTL:             cfg.TTL(),
	})

	shutdown := func() {
		workers.Close()
		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing store: %v", err)
		}
	}
	return service, cfg, shutdown, nil
}

// printResult renders a command result as indented JSON.
func printResult(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}

// validateNResults returns an error when n is outside the accepted range.
func validateNResults(n int) error {
	if n < 1 || n > 50 {
		return fmt.Errorf("n-results must be 1-50, got %d", n)
	}
	return nil
}
