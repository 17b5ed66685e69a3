// ABOUTME: Core data shapes for memo save, search, get, and delete operations
// ABOUTME: ChunkMetadata is the per-chunk record persisted alongside each embedding
package models

import "time"

// ChunkMetadata is the metadata stored with every chunk of a memo.
// Keywords stay a native string slice inside the process; the store
// gateway serializes them at its edge.
type ChunkMetadata struct {
	MemoID     string   `json:"memo_id"`
	SessionID  string   `json:"session_id"`
	ChunkIndex int      `json:"chunk_index"`
	Keywords   []string `json:"keywords"`
	Importance float64  `json:"importance"`
	SavedAt    string   `json:"saved_at"`
	ExpiresAt  string   `json:"expires_at"`
}

// SaveRequest carries the caller-supplied fields for saving a memo.
type SaveRequest struct {
	SessionID  string   `json:"session_id"`
	Text       string   `json:"text"`
	Summary    string   `json:"summary,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Importance float64  `json:"importance"`
}

// SaveResult confirms a save operation.
// ChunkIDs keeps the historical wire name "chroma_ids" for client compatibility.
type SaveResult struct {
	MemoID      string    `json:"memo_id"`
	SavedAt     time.Time `json:"saved_at"`
	ChunkIDs    []string  `json:"chroma_ids"`
	UsedSummary bool      `json:"used_summary"`
}

// SearchResultItem is one ranked hit from a similarity search.
type SearchResultItem struct {
	Document string        `json:"document"`
	Metadata ChunkMetadata `json:"metadata"`
	Distance float64       `json:"distance"`
}

// SearchResult wraps the query together with its ranked hits.
type SearchResult struct {
	Query   string             `json:"query"`
	Results []SearchResultItem `json:"results"`
}

// GetResult holds every stored chunk of one memo, unordered.
type GetResult struct {
	MemoID    string          `json:"memo_id"`
	Metadata  []ChunkMetadata `json:"metadata"`
	Documents []string        `json:"documents"`
}

// DeleteResult confirms a delete. Deleted is always true; deleting a
// memo that does not exist is a successful no-op.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	MemoID  string `json:"memo_id"`
}

// CleanupResult reports how many distinct memos the expiry sweep removed.
type CleanupResult struct {
	DeletedCount int `json:"deleted_count"`
}
