package seed

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"faq-seeder/config"
	"faq-seeder/embedding"
	"faq-seeder/faq"
	"faq-seeder/ingest"
	"faq-seeder/storage"
)

// Seed runs the full ingestion pass: generate an embedding for every FAQ
// question, store the combined documents, then attempt to create the
// vector index over them.
func Seed(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	faqs := faq.Default()
	if path := ctx.String("file"); path != "" {
		faqs, err = faq.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load FAQ list: %w", err)
		}
	}

	store, err := storage.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}

	return ingest.Run(ctx.Context, embedding.NewGenerator(cfg), store, faqs)
}
