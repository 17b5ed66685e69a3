// ABOUTME: MCP tool handler implementations for the memo service
// ABOUTME: Validates arguments at the boundary and masks dependency failure detail
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chottokun/mpc-memos/internal/core"
	"github.com/chottokun/mpc-memos/internal/models"
)

// Handlers contains the handler functions for all memo tools.
type Handlers struct {
	service         *core.MemoService
	defaultNResults int
}

// SaveMemo handles the save_memo tool.
func (h *Handlers) SaveMemo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	req := models.SaveRequest{
		SessionID:  sessionID,
		Text:       text,
		Summary:    request.GetString("summary", ""),
		Keywords:   request.GetStringSlice("keywords", nil),
		Importance: request.GetFloat("importance", 0.0),
	}

	result, err := h.service.SaveMemo(ctx, req)
	if err != nil {
		log.Printf("[MCP] save_memo failed: %v", err)
		return mcp.NewToolResultError("save_memo failed: internal error"), nil
	}
	return jsonResult(result)
}

// QueryMemo handles the query_memo tool.
func (h *Handlers) QueryMemo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || query == "" {
		return mcp.NewToolResultError("query argument is required and must be a non-empty string"), nil
	}

	nResults := request.GetInt("n_results", h.defaultNResults)
	if nResults < 1 || nResults > 50 {
		return mcp.NewToolResultError(fmt.Sprintf("n_results must be 1-50, got %d", nResults)), nil
	}

	result, err := h.service.Search(ctx, query, nResults)
	if err != nil {
		log.Printf("[MCP] query_memo failed: %v", err)
		return mcp.NewToolResultError("query_memo failed: internal error"), nil
	}
	return jsonResult(result)
}

// GetMemo handles the get_memo tool.
func (h *Handlers) GetMemo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	memoID, err := request.RequireString("memo_id")
	if err != nil || memoID == "" {
		return mcp.NewToolResultError("memo_id argument is required and must be a non-empty string"), nil
	}

	result, err := h.service.GetMemo(ctx, memoID)
	if err != nil {
		log.Printf("[MCP] get_memo failed: %v", err)
		return mcp.NewToolResultError("get_memo failed: internal error"), nil
	}
	return jsonResult(result)
}

// DeleteMemo handles the delete_memo tool.
func (h *Handlers) DeleteMemo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	memoID, err := request.RequireString("memo_id")
	if err != nil || memoID == "" {
		return mcp.NewToolResultError("memo_id argument is required and must be a non-empty string"), nil
	}

	result, err := h.service.DeleteMemo(ctx, memoID)
	if err != nil {
		log.Printf("[MCP] delete_memo failed: %v", err)
		return mcp.NewToolResultError("delete_memo failed: internal error"), nil
	}
	return jsonResult(result)
}

// CleanupMemos handles the cleanup_memos tool.
func (h *Handlers) CleanupMemos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.service.CleanupExpired(ctx)
	if err != nil {
		log.Printf("[MCP] cleanup_memos failed: %v", err)
		return mcp.NewToolResultError("cleanup_memos failed: internal error"), nil
	}
	return jsonResult(result)
}

// Healthcheck handles the healthcheck tool.
func (h *Handlers) Healthcheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	checks := h.service.Health(ctx)
	status := "ok"
	for _, ok := range checks {
		if !ok {
			status = "degraded"
		}
	}
	return jsonResult(map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
