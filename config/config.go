// Package config defines configuration parsing from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds the connection settings for the document store and the
// embedding API, parsed from environment variables.
type Config struct {
	StoreURL      string `env:"OPENSEARCH_URL" envDefault:"https://localhost:9200"`
	StoreUsername string `env:"OPENSEARCH_USERNAME" envDefault:"admin"`
	StorePassword string `env:"OPENSEARCH_PASSWORD" envDefault:"admin"`
	// Azure OpenAI credentials. There is no presence check here; a missing
	// value surfaces as an API error on the first embedding request.
	AzureAPIKey   string `env:"AZURE_API_KEY"`
	AzureEndpoint string `env:"AZURE_ENDPOINT_URL"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment configuration: %w", err)
	}
	return cfg, nil
}
