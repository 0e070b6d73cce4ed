package ingest

import (
	"context"
	"fmt"

	"faq-seeder/faq"
	"faq-seeder/storage"
)

// Embedder generates an embedding vector for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Store persists FAQ documents and provisions the supporting index.
type Store interface {
	Insert(ctx context.Context, doc Document) (string, error)
	CreateEmbeddingIndex(ctx context.Context) error
}

// Document aliases the stored document shape so callers of Run only need
// this package and the faq package.
type Document = storage.Document

// Run performs the ingestion pass: one embedding request and one insert
// per FAQ, in list order, followed by a single index creation attempt.
// An embedding or insert error aborts the run immediately; documents
// written before the failure stay in the store and the index attempt is
// skipped. An index creation failure is printed and swallowed, so a run
// that ingested everything still succeeds.
func Run(ctx context.Context, embedder Embedder, store Store, faqs []faq.FAQ) error {
	for _, f := range faqs {
		vector, err := embedder.Embed(ctx, f.Question)
		if err != nil {
			return fmt.Errorf("failed to generate embedding for question %q: %w", f.Question, err)
		}

		doc := Document{
			FAQ:       f,
			Embedding: vector,
		}
		id, err := store.Insert(ctx, doc)
		if err != nil {
			return fmt.Errorf("failed to store document for question %q: %w", f.Question, err)
		}
		fmt.Printf("Document inserted with id: %s\n", id)
	}

	if err := store.CreateEmbeddingIndex(ctx); err != nil {
		fmt.Printf("Error creating index: %v\n", err)
		return nil
	}
	fmt.Println("Vector search index created successfully")

	return nil
}
