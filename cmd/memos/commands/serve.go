// ABOUTME: Serve command starts the MCP stdio server
// ABOUTME: Enables LLM agents to save and retrieve memos via MCP tools
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chottokun/mpc-memos/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the memo service as an MCP (Model Context Protocol) server over
stdio, exposing save, search, get, delete, cleanup, and healthcheck
tools.`,
		RunE: runServe,
		Example: `  # Start MCP server (typically called by an MCP client)
  memos serve

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "memos": {
  #       "command": "memos",
  #       "args": ["serve"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	service, cfg, shutdown, err := buildService()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"MCP Memo Service",
		"0.1.0",
	)
	mcp.RegisterTools(server, service, cfg.NResultsDefault)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Memo MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		shutdown()
		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		shutdown()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
