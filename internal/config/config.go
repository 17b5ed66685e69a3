// ABOUTME: Centralized configuration for the memo MCP server
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the memo service
type Config struct {
	// Store settings
	DBPath string

	// OpenAI settings
	OpenAIKey      string
	OpenAIBaseURL  string
	EmbeddingModel string
	Timeout        time.Duration

	// Memo settings
	MaxChunkChars   int
	NResultsDefault int
	EmbedWorkers    int
	TTLDays         int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DBPath:          getEnv("MEMOS_DB_PATH", "./memos.db"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		EmbeddingModel:  getEnv("MEMOS_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxChunkChars:   getEnvInt("MEMOS_MAX_CHUNK_CHARS", 2000),
		NResultsDefault: getEnvInt("MEMOS_N_RESULTS_DEFAULT", 5),
		EmbedWorkers:    getEnvInt("MEMOS_EMBED_WORKERS", 2),
		TTLDays:         getEnvInt("MEMOS_TTL_DAYS", 30),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxChunkChars < 1 {
		return fmt.Errorf("MEMOS_MAX_CHUNK_CHARS must be positive, got %d", c.MaxChunkChars)
	}
	if c.NResultsDefault < 1 || c.NResultsDefault > 50 {
		return fmt.Errorf("MEMOS_N_RESULTS_DEFAULT must be 1-50, got %d", c.NResultsDefault)
	}
	if c.EmbedWorkers < 1 {
		return fmt.Errorf("MEMOS_EMBED_WORKERS must be positive, got %d", c.EmbedWorkers)
	}
	if c.TTLDays < 1 {
		return fmt.Errorf("MEMOS_TTL_DAYS must be positive, got %d", c.TTLDays)
	}
	return nil
}

// TTL returns the configured memo lifetime as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.TTLDays) * 24 * time.Hour
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
