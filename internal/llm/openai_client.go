// ABOUTME: OpenAI client adapter for batched text embeddings
// ABOUTME: One CreateEmbeddings call per batch; failures propagate with no retry
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultEmbeddingModel is used when no model is configured.
const DefaultEmbeddingModel = openai.SmallEmbedding3

// modelDimensions maps known embedding models to their vector sizes.
var modelDimensions = map[openai.EmbeddingModel]int{
	openai.SmallEmbedding3: 1536,
	openai.LargeEmbedding3: 3072,
	openai.AdaEmbeddingV2:  1536,
}

// ClientConfig holds configuration for the embedding client
type ClientConfig struct {
	APIKey         string
	BaseURL        string // optional override for local inference servers
	EmbeddingModel string
	Timeout        time.Duration
}

// OpenAIClient wraps the OpenAI API for embedding generation.
type OpenAIClient struct {
	client  *openai.Client
	model   openai.EmbeddingModel
	timeout time.Duration
}

// NewOpenAIClient creates a new embedding client.
func NewOpenAIClient(cfg *ClientConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := openai.EmbeddingModel(cfg.EmbeddingModel)
	if model == "" {
		model = DefaultEmbeddingModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(apiConfig),
		model:   model,
		timeout: timeout,
	}, nil
}

// EmbedBatch embeds all texts in a single API call, returning one vector
// per input in the same order. Any failure is returned as-is; there is
// no partial result and no retry.
func (c *OpenAIClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		vectors[i] = item.Embedding
	}
	return vectors, nil
}

// Dimensions returns the vector size of the configured model, or 0 when
// the model is unknown.
func (c *OpenAIClient) Dimensions() int {
	return modelDimensions[c.model]
}
