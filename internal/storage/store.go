// ABOUTME: Vector store gateway interface and metadata filters
// ABOUTME: Narrow add/query/get/delete surface over the chunk row store
package storage

import (
	"context"

	"github.com/chottokun/mpc-memos/internal/models"
)

// Filter selects chunk rows by memo id. The zero Filter matches every row.
type Filter struct {
	MemoID  string   // exact match when non-empty
	MemoIDs []string // set membership when non-empty
}

// QueryResult is one similarity hit: the stored chunk text, its
// metadata, and its cosine distance from the query vector.
type QueryResult struct {
	Document string
	Metadata models.ChunkMetadata
	Distance float64
}

// Store is the vector storage backend for memo chunks.
//
// Add assumes the caller guarantees unique ids; there is no upsert.
// Query returns up to topK rows ordered by ascending cosine distance.
// Get returns matching rows unordered. Delete of a non-matching filter
// is a successful no-op.
type Store interface {
	Add(ctx context.Context, ids []string, embeddings [][]float32, documents []string, metadatas []models.ChunkMetadata) error
	Query(ctx context.Context, embedding []float32, topK int) ([]QueryResult, error)
	Get(ctx context.Context, f Filter) ([]string, []models.ChunkMetadata, error)
	Delete(ctx context.Context, f Filter) error
	Ping(ctx context.Context) error
	Close() error
}
