package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"faq-seeder/cmd/index"
	"faq-seeder/cmd/seed"
)

func main() {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Generate embeddings for the FAQ list and store the documents",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "Load FAQs from a YAML file instead of the built-in list",
					},
				},
				Action: seed.Seed,
			},
			{
				Name:    "index",
				Aliases: []string{"i"},
				Usage:   "Create the vector search index over the FAQ documents",
				Action:  index.Index,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}

}
