// ABOUTME: SQLite-backed vector store with brute-force cosine ranking
// ABOUTME: Uses modernc.org/sqlite for pure-Go persistence, vectors as float32 BLOBs
package storage

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/chottokun/mpc-memos/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	id          TEXT PRIMARY KEY,
	memo_id     TEXT NOT NULL,
	session_id  TEXT NOT NULL,
	chunk_index INTEGER NOT NULL,
	keywords    TEXT NOT NULL DEFAULT '[]',
	importance  REAL NOT NULL DEFAULT 0,
	saved_at    TEXT NOT NULL,
	expires_at  TEXT NOT NULL,
	document    TEXT NOT NULL,
	embedding   BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chunks_memo_id ON chunks(memo_id);
`

// SQLiteStore implements Store on a local SQLite database. Similarity
// search loads every row and ranks in process; fine for the record
// volumes this service targets.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates the chunk database at the given path.
func Open(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Add appends one row per chunk inside a single transaction.
func (s *SQLiteStore) Add(ctx context.Context, ids []string, embeddings [][]float32, documents []string, metadatas []models.ChunkMetadata) error {
	if len(ids) != len(embeddings) || len(ids) != len(documents) || len(ids) != len(metadatas) {
		return fmt.Errorf("mismatched add lengths: %d ids, %d embeddings, %d documents, %d metadatas",
			len(ids), len(embeddings), len(documents), len(metadatas))
	}
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, memo_id, session_id, chunk_index, keywords, importance, saved_at, expires_at, document, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare add: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		meta := metadatas[i]
		keywordsJSON, err := encodeKeywords(meta.Keywords)
		if err != nil {
			return fmt.Errorf("serialize keywords for %s: %w", id, err)
		}
		_, err = stmt.ExecContext(ctx, id, meta.MemoID, meta.SessionID, meta.ChunkIndex,
			keywordsJSON, meta.Importance, meta.SavedAt, meta.ExpiresAt,
			documents[i], encodeVector(embeddings[i]))
		if err != nil {
			return fmt.Errorf("insert chunk %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Query ranks every stored chunk by cosine distance to the query vector
// and returns the topK closest, ascending.
func (s *SQLiteStore) Query(ctx context.Context, embedding []float32, topK int) ([]QueryResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT memo_id, session_id, chunk_index, keywords, importance, saved_at, expires_at, document, embedding
		FROM chunks
	`)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		doc, meta, vector, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, QueryResult{
			Document: doc,
			Metadata: meta,
			Distance: cosineDistance(embedding, vector),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan chunks: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Get returns documents and metadata for every row matching the filter,
// in no particular order.
func (s *SQLiteStore) Get(ctx context.Context, f Filter) ([]string, []models.ChunkMetadata, error) {
	where, args := whereClause(f)
	rows, err := s.db.QueryContext(ctx, `
		SELECT memo_id, session_id, chunk_index, keywords, importance, saved_at, expires_at, document, embedding
		FROM chunks`+where, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("get chunks: %w", err)
	}
	defer rows.Close()

	documents := []string{}
	metadatas := []models.ChunkMetadata{}
	for rows.Next() {
		doc, meta, _, err := scanChunk(rows)
		if err != nil {
			return nil, nil, err
		}
		documents = append(documents, doc)
		metadatas = append(metadatas, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan chunks: %w", err)
	}
	return documents, metadatas, nil
}

// Delete removes every row matching the filter. No matching rows is a
// successful no-op.
func (s *SQLiteStore) Delete(ctx context.Context, f Filter) error {
	where, args := whereClause(f)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chunks`+where, args...); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	return nil
}

// Ping verifies the database connection is alive.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func whereClause(f Filter) (string, []any) {
	switch {
	case f.MemoID != "":
		return ` WHERE memo_id = ?`, []any{f.MemoID}
	case len(f.MemoIDs) > 0:
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(f.MemoIDs)), ",")
		args := make([]any, len(f.MemoIDs))
		for i, id := range f.MemoIDs {
			args[i] = id
		}
		return ` WHERE memo_id IN (` + placeholders + `)`, args
	default:
		return "", nil
	}
}

func scanChunk(rows *sql.Rows) (string, models.ChunkMetadata, []float32, error) {
	var (
		meta         models.ChunkMetadata
		keywordsJSON string
		document     string
		blob         []byte
	)
	err := rows.Scan(&meta.MemoID, &meta.SessionID, &meta.ChunkIndex, &keywordsJSON,
		&meta.Importance, &meta.SavedAt, &meta.ExpiresAt, &document, &blob)
	if err != nil {
		return "", models.ChunkMetadata{}, nil, fmt.Errorf("scan chunk row: %w", err)
	}
	meta.Keywords, err = decodeKeywords(keywordsJSON)
	if err != nil {
		return "", models.ChunkMetadata{}, nil, fmt.Errorf("deserialize keywords: %w", err)
	}
	return document, meta, decodeVector(blob), nil
}

// Keywords cross the gateway as []string and live in the database as a
// JSON text blob; this is the only place that conversion happens.
func encodeKeywords(keywords []string) (string, error) {
	if keywords == nil {
		keywords = []string{}
	}
	data, err := json.Marshal(keywords)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeKeywords(raw string) ([]string, error) {
	keywords := []string{}
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

func encodeVector(vector []float32) []byte {
	buf := new(bytes.Buffer)
	// binary.Write cannot fail on a bytes.Buffer with a fixed-size type
	_ = binary.Write(buf, binary.LittleEndian, vector)
	return buf.Bytes()
}

func decodeVector(blob []byte) []float32 {
	vector := make([]float32, len(blob)/4)
	_ = binary.Read(bytes.NewReader(blob), binary.LittleEndian, &vector)
	return vector
}

// cosineDistance returns 1 - cosine similarity; smaller is more similar.
// Mismatched or zero-magnitude vectors rank last.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1.0
	}
	return 1.0 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
