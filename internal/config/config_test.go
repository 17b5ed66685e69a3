// ABOUTME: Unit tests for environment-based configuration
// ABOUTME: Verifies defaults, overrides, and validation ranges
package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"MEMOS_DB_PATH", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_TIMEOUT",
		"MEMOS_EMBEDDING_MODEL", "MEMOS_MAX_CHUNK_CHARS", "MEMOS_N_RESULTS_DEFAULT",
		"MEMOS_EMBED_WORKERS", "MEMOS_TTL_DAYS",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "./memos.db" {
		t.Errorf("DBPath = %q, want ./memos.db", cfg.DBPath)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxChunkChars != 2000 {
		t.Errorf("MaxChunkChars = %d, want 2000", cfg.MaxChunkChars)
	}
	if cfg.NResultsDefault != 5 {
		t.Errorf("NResultsDefault = %d, want 5", cfg.NResultsDefault)
	}
	if cfg.EmbedWorkers != 2 {
		t.Errorf("EmbedWorkers = %d, want 2", cfg.EmbedWorkers)
	}
	if cfg.TTLDays != 30 {
		t.Errorf("TTLDays = %d, want 30", cfg.TTLDays)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEMOS_DB_PATH", "/tmp/test/memos.db")
	t.Setenv("MEMOS_MAX_CHUNK_CHARS", "500")
	t.Setenv("MEMOS_N_RESULTS_DEFAULT", "10")
	t.Setenv("MEMOS_EMBED_WORKERS", "4")
	t.Setenv("MEMOS_TTL_DAYS", "7")
	t.Setenv("OPENAI_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "/tmp/test/memos.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.MaxChunkChars != 500 {
		t.Errorf("MaxChunkChars = %d, want 500", cfg.MaxChunkChars)
	}
	if cfg.NResultsDefault != 10 {
		t.Errorf("NResultsDefault = %d, want 10", cfg.NResultsDefault)
	}
	if cfg.EmbedWorkers != 4 {
		t.Errorf("EmbedWorkers = %d, want 4", cfg.EmbedWorkers)
	}
	if cfg.TTLDays != 7 {
		t.Errorf("TTLDays = %d, want 7", cfg.TTLDays)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.TTL() != 7*24*time.Hour {
		t.Errorf("TTL() = %v, want 168h", cfg.TTL())
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEMOS_MAX_CHUNK_CHARS", "not-a-number")
	t.Setenv("OPENAI_TIMEOUT", "garbage")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxChunkChars != 2000 {
		t.Errorf("MaxChunkChars = %d, want default 2000", cfg.MaxChunkChars)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"zero chunk chars", "MEMOS_MAX_CHUNK_CHARS", "0", true},
		{"negative workers", "MEMOS_EMBED_WORKERS", "-1", true},
		{"zero ttl", "MEMOS_TTL_DAYS", "0", true},
		{"n_results too low", "MEMOS_N_RESULTS_DEFAULT", "0", true},
		{"n_results too high", "MEMOS_N_RESULTS_DEFAULT", "51", true},
		{"n_results at upper bound", "MEMOS_N_RESULTS_DEFAULT", "50", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
