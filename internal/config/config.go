// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor
// principles; a .env file in the working directory is read first when
// present and never overrides variables already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Token store backends.
const (
	TokenStoreFile     = "file"
	TokenStoreMemory   = "memory"
	TokenStoreRedis    = "redis"
	TokenStorePostgres = "postgres"
)

// Validation errors.
var (
	ErrUnknownTokenStore = errors.New("unknown token store")
	ErrMissingRedisURL   = errors.New("REDIS_URL is required for the redis token store")
	ErrMissingDatabase   = errors.New("DATABASE_URL is required for the postgres token store")
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"3000"`

	// ERP backend
	ERPEndpoint string        `env:"ERP_GRPC_ENDPOINT" envDefault:"localhost:8080"`
	CallTimeout time.Duration `env:"ERP_CALL_TIMEOUT" envDefault:"30s"`

	// Session storage
	TokenStore     string        `env:"TOKEN_STORE" envDefault:"file"`
	TokenFile      string        `env:"TOKEN_FILE"`
	TokenKeyPrefix string        `env:"TOKEN_KEY_PREFIX" envDefault:"erp:storage:"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"0s"`
	LoginPath      string        `env:"LOGIN_PATH" envDefault:"/login"`

	// Cache (Redis), only for TOKEN_STORE=redis
	RedisURL string `env:"REDIS_URL"`

	// Database (PostgreSQL), only for TOKEN_STORE=postgres
	DatabaseURL string `env:"DATABASE_URL"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"35s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// CORS configuration
	// Comma-separated list of allowed origins (e.g., "https://erp.example.com,https://admin.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// GetTokenFile returns the token file path, defaulting to erp/session.json
// under the user config directory.
func (c *Config) GetTokenFile() string {
	if c.TokenFile != "" {
		return c.TokenFile
	}
	return DefaultTokenFile()
}

// DefaultTokenFile returns the default token file location.
func DefaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "erp", "session.json")
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	switch c.TokenStore {
	case TokenStoreFile, TokenStoreMemory:
	case TokenStoreRedis:
		if c.RedisURL == "" {
			return ErrMissingRedisURL
		}
	case TokenStorePostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTokenStore, c.TokenStore)
	}
	if c.CallTimeout < 0 {
		return fmt.Errorf("ERP_CALL_TIMEOUT must not be negative, got %s", c.CallTimeout)
	}
	return nil
}

// Load reads .env when present, parses environment variables and validates
// the result.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
