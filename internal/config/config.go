package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// ProviderConfig holds market-data provider configuration
type ProviderConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"`
	CatalogLimit      int           `mapstructure:"catalog_limit"`
	BatchSize         int           `mapstructure:"batch_size"`
	MaxConcurrency    int           `mapstructure:"max_concurrency"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
}

// SyncConfig holds sync cadence configuration
type SyncConfig struct {
	CatalogWindow   time.Duration `mapstructure:"catalog_window"`
	MetadataWindow  time.Duration `mapstructure:"metadata_window"`
	QuoteWindow     time.Duration `mapstructure:"quote_window"`
	RetryDelay      time.Duration `mapstructure:"retry_delay"`
	HistoricalRange time.Duration `mapstructure:"historical_range"`
	SearchLimit     int           `mapstructure:"search_limit"`
}

// APIConfig holds configuration for the api binary
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Server     ServerConfig   `mapstructure:"server"`
	Provider   ProviderConfig `mapstructure:"provider"`
	Sync       SyncConfig     `mapstructure:"sync"`
}

// SyncdConfig holds configuration for the syncd binary
type SyncdConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Provider   ProviderConfig `mapstructure:"provider"`
	Sync       SyncConfig     `mapstructure:"sync"`
}

// LoadAPIConfig loads configuration for the api binary
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setProviderDefaults(v)
	setSyncDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Provider.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSyncdConfig loads configuration for the syncd binary
func LoadSyncdConfig(configFile string, envPath string) (*SyncdConfig, error) {
	v := configureViper("syncd", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	setDatabaseDefaults(v)
	setProviderDefaults(v)
	setSyncDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config SyncdConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Provider.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setProviderDefaults(v *viper.Viper) {
	v.SetDefault("provider.base_url", "https://pro-api.coinmarketcap.com")
	v.SetDefault("provider.catalog_limit", 5000)
	v.SetDefault("provider.batch_size", 1000)
	v.SetDefault("provider.max_concurrency", 3)
	v.SetDefault("provider.requests_per_minute", 25)
	v.SetDefault("provider.http_timeout", "30s")
}

func setSyncDefaults(v *viper.Viper) {
	v.SetDefault("sync.catalog_window", "24h")
	v.SetDefault("sync.metadata_window", "24h")
	v.SetDefault("sync.quote_window", "1h")
	v.SetDefault("sync.retry_delay", "1h")
	v.SetDefault("sync.historical_range", "720h")
	v.SetDefault("sync.search_limit", 50)
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/syncd/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("COINCACHE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Provider
		"provider.base_url",
		"provider.api_key",
		"provider.catalog_limit",
		"provider.batch_size",
		"provider.max_concurrency",
		"provider.requests_per_minute",
		"provider.http_timeout",
		// Sync
		"sync.catalog_window",
		"sync.metadata_window",
		"sync.quote_window",
		"sync.retry_delay",
		"sync.historical_range",
		"sync.search_limit",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// Validate checks that the provider can actually be called
func (c *ProviderConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("provider.api_key is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
