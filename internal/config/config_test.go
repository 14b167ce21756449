package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
server:
  host: 127.0.0.1
  port: 9090
provider:
  api_key: "test-key"
  base_url: "https://sandbox-api.coinmarketcap.com"
  batch_size: 500
  max_concurrency: 2
sync:
  catalog_window: "12h"
  metadata_window: "6h"
  quote_window: "30m"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "test-key", cfg.Provider.APIKey)
				assert.Equal(t, "https://sandbox-api.coinmarketcap.com", cfg.Provider.BaseURL)
				assert.Equal(t, 500, cfg.Provider.BatchSize)
				assert.Equal(t, 2, cfg.Provider.MaxConcurrency)
				assert.Equal(t, 12*time.Hour, cfg.Sync.CatalogWindow)
				assert.Equal(t, 6*time.Hour, cfg.Sync.MetadataWindow)
				assert.Equal(t, 30*time.Minute, cfg.Sync.QuoteWindow)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
provider:
  api_key: "test-key"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "https://pro-api.coinmarketcap.com", cfg.Provider.BaseURL)
				assert.Equal(t, 5000, cfg.Provider.CatalogLimit)
				assert.Equal(t, 1000, cfg.Provider.BatchSize)
				assert.Equal(t, 3, cfg.Provider.MaxConcurrency)
				assert.Equal(t, 25, cfg.Provider.RequestsPerMinute)
				assert.Equal(t, 30*time.Second, cfg.Provider.HTTPTimeout)
				assert.Equal(t, 24*time.Hour, cfg.Sync.CatalogWindow)
				assert.Equal(t, 24*time.Hour, cfg.Sync.MetadataWindow)
				assert.Equal(t, time.Hour, cfg.Sync.QuoteWindow)
				assert.Equal(t, time.Hour, cfg.Sync.RetryDelay)
				assert.Equal(t, 30*24*time.Hour, cfg.Sync.HistoricalRange)
				assert.Equal(t, 50, cfg.Sync.SearchLimit)
			},
		},
		{
			name: "missing api key",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "empty base url",
			configFile: `
provider:
  api_key: "test-key"
  base_url: ""
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)

			cfg, err := LoadAPIConfig(path, t.TempDir())
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSyncdConfig(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
provider:
  api_key: "test-key"
sync:
  retry_delay: "15m"
`)

	cfg, err := LoadSyncdConfig(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Sync.RetryDelay)
	assert.Equal(t, 24*time.Hour, cfg.Sync.CatalogWindow)
	assert.Equal(t, 24*time.Hour, cfg.Sync.MetadataWindow)
}

func TestLoadAPIConfigFromEnv(t *testing.T) {
	t.Setenv("COINCACHE_DATABASE_HOST", "db.internal")
	t.Setenv("COINCACHE_PROVIDER_API_KEY", "env-key")
	t.Setenv("COINCACHE_SERVER_PORT", "9999")

	// Point the loader at an empty directory so no config file is found
	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "env-key", cfg.Provider.APIKey)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "coins",
		Password: "secret",
		DBName:   "coincache",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=coins password=secret dbname=coincache sslmode=disable",
		cfg.DSN())
}
