package index

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"faq-seeder/config"
	"faq-seeder/storage"
)

// Index provisions the vector index on its own, for running once before
// any documents exist. Unlike the best-effort attempt at the end of a
// seed run, a failure here is reported as an error.
func Index(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := store.CreateEmbeddingIndex(ctx.Context); err != nil {
		return err
	}
	fmt.Println("Vector search index created successfully")

	return nil
}
