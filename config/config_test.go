package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("OPENSEARCH_URL", "https://search.internal:9200")
	t.Setenv("OPENSEARCH_USERNAME", "seeder")
	t.Setenv("OPENSEARCH_PASSWORD", "hunter2")
	t.Setenv("AZURE_API_KEY", "key-123")
	t.Setenv("AZURE_ENDPOINT_URL", "https://example.openai.azure.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://search.internal:9200", cfg.StoreURL)
	assert.Equal(t, "seeder", cfg.StoreUsername)
	assert.Equal(t, "hunter2", cfg.StorePassword)
	assert.Equal(t, "key-123", cfg.AzureAPIKey)
	assert.Equal(t, "https://example.openai.azure.com", cfg.AzureEndpoint)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"OPENSEARCH_URL", "OPENSEARCH_USERNAME", "OPENSEARCH_PASSWORD", "AZURE_API_KEY", "AZURE_ENDPOINT_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:9200", cfg.StoreURL)
	assert.Equal(t, "admin", cfg.StoreUsername)
	assert.Equal(t, "admin", cfg.StorePassword)

	// Absent credentials stay empty; connection attempts fail at first
	// use rather than at load time.
	assert.Empty(t, cfg.AzureAPIKey)
	assert.Empty(t, cfg.AzureEndpoint)
}
