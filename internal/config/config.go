// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Supported database dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// finance advisor API. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application name, version and deployment environment.
	App App `envPrefix:"APP_"`

	// Log controls the log level and the optional rotating log file.
	Log Log `envPrefix:"LOG_"`

	// Auth holds JWT signing settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// OpenAI holds the LLM provider connection and retry settings.
	OpenAI OpenAI `envPrefix:"OPENAI_"`

	// RateLimit selects and configures the rate limiter store.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Workers holds intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level metadata.
type App struct {
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is exposed via /, /info and /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment is a free-form deployment label (development, production).
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File enables a rotating log file next to stdout when non-empty.
	// Env: LOG_FILE
	File string `env:"FILE"`

	MaxSizeMB  int  `env:"MAX_SIZE_MB"`
	MaxBackups int  `env:"MAX_BACKUPS"`
	MaxAgeDays int  `env:"MAX_AGE_DAYS"`
	Compress   bool `env:"COMPRESS"`
}

// Auth holds the settings used to issue and verify access tokens.
type Auth struct {
	// SecretKey signs and verifies JWT tokens. Required.
	// Env: AUTH_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DatabaseURL has the highest priority when resolving the connection URL.
	// Env: STORAGE_DB_DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL"`

	// PostgresURL is used when DatabaseURL is empty.
	// Env: STORAGE_DB_POSTGRES_URL
	PostgresURL string `env:"POSTGRES_URL"`

	// SQLitePath is the database file used when no URL is configured.
	// Env: STORAGE_DB_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH"`

	PoolSize         int           `env:"POOL_SIZE"`
	MaxOverflow      int           `env:"MAX_OVERFLOW"`
	PoolTimeout      time.Duration `env:"POOL_TIMEOUT"`
	PoolRecycle      time.Duration `env:"POOL_RECYCLE"`
	Echo             bool          `env:"ECHO"`
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT"`
}

// URL returns the effective connection URL: DatabaseURL, then PostgresURL,
// then a sqlite:// URL built from SQLitePath.
func (db DB) URL() string {
	switch {
	case db.DatabaseURL != "":
		return db.DatabaseURL
	case db.PostgresURL != "":
		return db.PostgresURL
	default:
		return "sqlite:///" + db.SQLitePath
	}
}

// Dialect reports which backend URL selects.
func (db DB) Dialect() string {
	u := db.URL()
	if strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://") {
		return DialectPostgres
	}

	return DialectSQLite
}

// SQLiteFile returns the file path part of a SQLite URL. Bare paths are
// returned unchanged.
func (db DB) SQLiteFile() string {
	u := db.URL()
	for _, prefix := range []string{"sqlite:///", "sqlite://", "sqlite:"} {
		if strings.HasPrefix(u, prefix) {
			return strings.TrimPrefix(u, prefix)
		}
	}

	return u
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists allowed browser origins, comma separated in env.
	// Env: SERVER_CORS_ORIGINS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// OpenAI holds settings of the LLM provider adapter.
type OpenAI struct {
	// APIKey may be empty; AI endpoints answer 503 until it is set.
	// Env: OPENAI_API_KEY
	APIKey       string `env:"API_KEY"`
	BaseURL      string `env:"BASE_URL"`
	Organization string `env:"ORGANIZATION"`

	Timeout        time.Duration `env:"TIMEOUT"`
	MaxRetries     int           `env:"MAX_RETRIES"`
	RetryMinWait   time.Duration `env:"RETRY_MIN_WAIT"`
	RetryMaxWait   time.Duration `env:"RETRY_MAX_WAIT"`
	ModelsCacheTTL time.Duration `env:"MODELS_CACHE_TTL"`
}

// RateLimit configures request throttling.
type RateLimit struct {
	// Enabled is a pointer so an explicit false survives merging with defaults.
	// Env: RATE_LIMIT_ENABLED
	Enabled *bool `env:"ENABLED"`

	// RedisAddr switches the limiter to the Redis store when set.
	// Env: RATE_LIMIT_REDIS_ADDR
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	KeyPrefix     string `env:"KEY_PREFIX"`
}

// IsEnabled reports whether rate limiting is switched on. Unset means on.
func (r RateLimit) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Workers holds intervals of background workers.
type Workers struct {
	LimiterCleanupInterval time.Duration `env:"LIMITER_CLEANUP_INTERVAL"`
	LimiterIdleTTL         time.Duration `env:"LIMITER_IDLE_TTL"`
	HealthProbeInterval    time.Duration `env:"HEALTH_PROBE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source with a non-zero field wins):
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
