package storage

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"faq-seeder/config"
	"faq-seeder/faq"
)

const (
	indexName = "faqs"

	// Output dimensionality of text-embedding-3-small
	embeddingDimension = 1536
)

// Document is the shape persisted to the store: the FAQ fields plus the
// vector generated from the question.
type Document struct {
	faq.FAQ
	Embedding []float32 `json:"embedding"`
}

// Store wraps an OpenSearch client scoped to the faqs index.
type Store struct {
	client *opensearch.Client
}

// Connect builds a client for the store described by cfg. The client does
// not dial here; connection failures surface on the first request.
func Connect(cfg config.Config) (*Store, error) {
	client, err := opensearch.NewClient(opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		Addresses: []string{cfg.StoreURL},
		Username:  cfg.StoreUsername,
		Password:  cfg.StorePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build store client: %w", err)
	}

	return &Store{client: client}, nil
}

// Insert writes doc under a fresh generated identifier and returns the
// identifier reported back by the store.
func (s *Store) Insert(ctx context.Context, doc Document) (string, error) {
	docBody, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: uuid.NewString(),
		Body:       bytes.NewReader(docBody),
	}
	insertResponse, err := req.Do(ctx, s.client)
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}
	defer insertResponse.Body.Close()
	if insertResponse.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected response inserting document: %s", insertResponse.String())
	}

	var result struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(insertResponse.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse insert response: %w", err)
	}

	return result.ID, nil
}

// CreateEmbeddingIndex creates the faqs index with knn enabled and a
// knn_vector mapping over the embedding field, so the stored vectors can
// back similarity queries. An index that already exists comes back as an
// error; the caller decides whether that is fatal.
func (s *Store) CreateEmbeddingIndex(ctx context.Context) error {
	mapping := fmt.Sprintf(`{
	  "settings": {"index": {"knn": true}},
	  "mappings": {
	    "properties": {
	      "question": {"type": "text"},
	      "answer": {"type": "text"},
	      "embedding": {"type": "knn_vector", "dimension": %d}
	    }
	  }
	}`, embeddingDimension)

	req := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}
	createResponse, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to create embedding index: %w", err)
	}
	defer createResponse.Body.Close()
	if createResponse.StatusCode >= 300 {
		return fmt.Errorf("unexpected response creating embedding index: %s", createResponse.String())
	}

	return nil
}
