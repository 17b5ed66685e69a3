// ABOUTME: MCP tool definitions and registration for the memo service
// ABOUTME: Exposes save, search, get, delete, cleanup, and healthcheck tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/chottokun/mpc-memos/internal/core"
)

// RegisterTools registers all memo tools with the server.
func RegisterTools(server *mcpserver.MCPServer, service *core.MemoService, defaultNResults int) *Handlers {
	handlers := &Handlers{
		service:         service,
		defaultNResults: defaultNResults,
	}

	server.AddTool(mcp.Tool{
		Name:        "save_memo",
		Description: "Save a memo for semantic search. The text is chunked, embedded, and stored; the raw text itself is never retained.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Caller-supplied session grouping label",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Raw memo text",
				},
				"summary": map[string]interface{}{
					"type":        "string",
					"description": "Optional summary; when present it is embedded instead of the text",
				},
				"keywords": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional keywords stored with each chunk",
				},
				"importance": map[string]interface{}{
					"type":        "number",
					"description": "Optional importance score (default 0.0)",
				},
			},
			Required: []string{"session_id", "text"},
		},
	}, handlers.SaveMemo)

	server.AddTool(mcp.Tool{
		Name:        "query_memo",
		Description: "Search memos by semantic similarity to a query string.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"n_results": map[string]interface{}{
					"type":        "number",
					"description": "Number of results to return, 1-50",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.QueryMemo)

	server.AddTool(mcp.Tool{
		Name:        "get_memo",
		Description: "Get all stored chunks and metadata for a memo ID.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"memo_id": map[string]interface{}{
					"type":        "string",
					"description": "Memo ID to retrieve",
				},
			},
			Required: []string{"memo_id"},
		},
	}, handlers.GetMemo)

	server.AddTool(mcp.Tool{
		Name:        "delete_memo",
		Description: "Delete all chunks of a memo by ID. Idempotent; succeeds even if the memo does not exist.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"memo_id": map[string]interface{}{
					"type":        "string",
					"description": "Memo ID to delete",
				},
			},
			Required: []string{"memo_id"},
		},
	}, handlers.DeleteMemo)

	server.AddTool(mcp.Tool{
		Name:        "cleanup_memos",
		Description: "Remove all memos whose TTL has lapsed and report how many were removed.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.CleanupMemos)

	server.AddTool(mcp.Tool{
		Name:        "healthcheck",
		Description: "Check that the service and its collaborators are responsive.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.Healthcheck)

	return handlers
}
