// ABOUTME: MemoService orchestrates chunking, embedding, storage, retrieval, and expiry
// ABOUTME: All embedder and store calls are dispatched through the bounded worker pool
package core

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/chottokun/mpc-memos/internal/models"
	"github.com/chottokun/mpc-memos/internal/pool"
	"github.com/chottokun/mpc-memos/internal/storage"
)

// Embedder converts batches of text into embedding vectors, one vector
// per input in the same order.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// timestampLayout is fixed-width, zero-padded UTC so that stored
// timestamps compare correctly as plain strings.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// ServiceConfig holds the tunable knobs for MemoService.
type ServiceConfig struct {
	MaxChunkChars   int
	NResultsDefault int
	TTL             time.Duration
}

// MemoService implements the memo ingestion and retrieval pipeline.
// Collaborators are injected so tests can substitute fakes; the service
// itself holds no locks and no cross-request mutable state.
type MemoService struct {
	store    storage.Store
	embedder Embedder
	workers  *pool.Pool
	cfg      ServiceConfig
	now      func() time.Time // test seam, defaults to time.Now
}

// NewMemoService creates a MemoService with the given collaborators.
func NewMemoService(store storage.Store, embedder Embedder, workers *pool.Pool, cfg ServiceConfig) *MemoService {
	if cfg.MaxChunkChars < 1 {
		cfg.MaxChunkChars = 2000
	}
	if cfg.NResultsDefault < 1 {
		cfg.NResultsDefault = 5
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	return &MemoService{
		store:    store,
		embedder: embedder,
		workers:  workers,
		cfg:      cfg,
		now:      time.Now,
	}
}

// SaveMemo chunks the embed source, embeds all chunks in one batched
// call, and stores them in one batched add. The embed source is the
// summary when one is supplied, otherwise the memo text. An empty embed
// source is a successful save of zero chunks. Raw text is never
// persisted; only its fingerprint reaches the audit log.
func (s *MemoService) SaveMemo(ctx context.Context, req models.SaveRequest) (*models.SaveResult, error) {
	if s.embedder == nil {
		return nil, fmt.Errorf("embedding provider not configured")
	}

	memoID := uuid.New().String()
	savedAt := s.now().UTC()
	expiresAt := savedAt.Add(s.cfg.TTL)

	embedSource := req.Text
	usedSummary := false
	if req.Summary != "" {
		embedSource = req.Summary
		usedSummary = true
	}

	log.Printf("[MEMO] Saving memo_id=%s session=%s fingerprint=%s",
		memoID, req.SessionID, Fingerprint(req.Text))

	chunks := Chunk(embedSource, s.cfg.MaxChunkChars)
	if len(chunks) == 0 {
		return &models.SaveResult{
			MemoID:      memoID,
			SavedAt:     savedAt,
			ChunkIDs:    []string{},
			UsedSummary: usedSummary,
		}, nil
	}

	vectors, err := pool.Do(s.workers, func() ([][]float32, error) {
		return s.embedder.EmbedBatch(ctx, chunks)
	})
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}

	ids := make([]string, len(chunks))
	metadatas := make([]models.ChunkMetadata, len(chunks))
	for i := range chunks {
		ids[i] = fmt.Sprintf("%s:%d", memoID, i)
		metadatas[i] = models.ChunkMetadata{
			MemoID:     memoID,
			SessionID:  req.SessionID,
			ChunkIndex: i,
			Keywords:   req.Keywords,
			Importance: req.Importance,
			SavedAt:    savedAt.Format(timestampLayout),
			ExpiresAt:  expiresAt.Format(timestampLayout),
		}
	}

	err = pool.Run(s.workers, func() error {
		return s.store.Add(ctx, ids, vectors, chunks, metadatas)
	})
	if err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}

	log.Printf("[MEMO] Saved memo_id=%s chunks=%d", memoID, len(chunks))

	return &models.SaveResult{
		MemoID:      memoID,
		SavedAt:     savedAt,
		ChunkIDs:    ids,
		UsedSummary: usedSummary,
	}, nil
}

// Search embeds the query and returns the topK nearest chunks by cosine
// distance, in the store's ranking order. A topK below 1 falls back to
// the configured default. An empty store yields an empty result list.
func (s *MemoService) Search(ctx context.Context, query string, topK int) (*models.SearchResult, error) {
	if s.embedder == nil {
		return nil, fmt.Errorf("embedding provider not configured")
	}
	if topK < 1 {
		topK = s.cfg.NResultsDefault
	}

	vectors, err := pool.Do(s.workers, func() ([][]float32, error) {
		return s.embedder.EmbedBatch(ctx, []string{query})
	})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed query: expected 1 vector, got %d", len(vectors))
	}

	hits, err := pool.Do(s.workers, func() ([]storage.QueryResult, error) {
		return s.store.Query(ctx, vectors[0], topK)
	})
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}

	results := make([]models.SearchResultItem, 0, len(hits))
	for _, hit := range hits {
		results = append(results, models.SearchResultItem{
			Document: hit.Document,
			Metadata: hit.Metadata,
			Distance: hit.Distance,
		})
	}
	return &models.SearchResult{Query: query, Results: results}, nil
}

type chunkRows struct {
	documents []string
	metadatas []models.ChunkMetadata
}

// GetMemo returns all stored chunks of a memo, unordered. An unknown
// memo id yields empty lists, not an error.
func (s *MemoService) GetMemo(ctx context.Context, memoID string) (*models.GetResult, error) {
	rows, err := pool.Do(s.workers, func() (chunkRows, error) {
		documents, metadatas, err := s.store.Get(ctx, storage.Filter{MemoID: memoID})
		return chunkRows{documents, metadatas}, err
	})
	if err != nil {
		return nil, fmt.Errorf("get memo: %w", err)
	}
	return &models.GetResult{
		MemoID:    memoID,
		Metadata:  rows.metadatas,
		Documents: rows.documents,
	}, nil
}

// DeleteMemo removes every chunk of a memo. Deletion is idempotent:
// deleting an unknown memo id reports success.
func (s *MemoService) DeleteMemo(ctx context.Context, memoID string) (*models.DeleteResult, error) {
	err := pool.Run(s.workers, func() error {
		return s.store.Delete(ctx, storage.Filter{MemoID: memoID})
	})
	if err != nil {
		return nil, fmt.Errorf("delete memo: %w", err)
	}
	return &models.DeleteResult{Deleted: true, MemoID: memoID}, nil
}

// CleanupExpired removes every memo whose TTL has lapsed and returns the
// number of distinct memos removed. Expiry is lazy: a full scan of the
// stored metadata compared against now, then one bulk delete. The scan
// is O(total chunks) per sweep, which is acceptable at this service's
// record volumes.
func (s *MemoService) CleanupExpired(ctx context.Context) (*models.CleanupResult, error) {
	nowStr := s.now().UTC().Format(timestampLayout)

	rows, err := pool.Do(s.workers, func() (chunkRows, error) {
		documents, metadatas, err := s.store.Get(ctx, storage.Filter{})
		return chunkRows{documents, metadatas}, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan store: %w", err)
	}

	expired := make(map[string]bool)
	for _, meta := range rows.metadatas {
		if meta.ExpiresAt != "" && meta.ExpiresAt < nowStr {
			expired[meta.MemoID] = true
		}
	}
	if len(expired) == 0 {
		return &models.CleanupResult{DeletedCount: 0}, nil
	}

	memoIDs := make([]string, 0, len(expired))
	for id := range expired {
		memoIDs = append(memoIDs, id)
	}
	sort.Strings(memoIDs)

	err = pool.Run(s.workers, func() error {
		return s.store.Delete(ctx, storage.Filter{MemoIDs: memoIDs})
	})
	if err != nil {
		return nil, fmt.Errorf("delete expired memos: %w", err)
	}

	log.Printf("[MEMO] Cleanup removed %d expired memos", len(memoIDs))
	return &models.CleanupResult{DeletedCount: len(memoIDs)}, nil
}

// Health reports reachability of the service's collaborators.
func (s *MemoService) Health(ctx context.Context) map[string]bool {
	return map[string]bool{
		"store":    s.store.Ping(ctx) == nil,
		"embedder": s.embedder != nil,
	}
}
