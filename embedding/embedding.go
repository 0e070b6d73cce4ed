package embedding

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"faq-seeder/config"
)

// Model is the embedding model requested for every FAQ question.
const Model = openai.SmallEmbedding3

// Generator produces embedding vectors through the Azure OpenAI API.
type Generator struct {
	client *openai.Client
}

// NewGenerator builds a Generator from the Azure credentials in cfg. The
// client library pins the Azure API version (2023-05-15).
func NewGenerator(cfg config.Config) *Generator {
	azureConfig := openai.DefaultAzureConfig(cfg.AzureAPIKey, cfg.AzureEndpoint)
	return &Generator{client: openai.NewClientWithConfig(azureConfig)}
}

// Embed requests a single embedding for text and returns the first (and
// only expected) result vector, untransformed.
func (g *Generator) Embed(ctx context.Context, text string) ([]float32, error) {
	response, err := g.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(response.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no vectors")
	}

	return response.Data[0].Embedding, nil
}
