package config

import "time"

// Default values used when no other source provides a field.
const (
	DefaultAppName        = "Finance Advisor API"
	DefaultAppVersion     = "1.0.0"
	DefaultEnvironment    = "development"
	DefaultLogLevel       = "debug"
	DefaultTokenIssuer    = "finance-advisor-api"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultSQLitePath     = "./finance_app.db"
	DefaultHTTPAddress    = "0.0.0.0:8000"
	DefaultRequestTimeout = 60 * time.Second
	DefaultOpenAIBaseURL  = "https://api.openai.com/v1"
	DefaultRateLimitKey   = "ratelimit:"
)

func defaultConfig() *StructuredConfig {
	enabled := true

	return &StructuredConfig{
		App: App{
			Name:        DefaultAppName,
			Version:     DefaultAppVersion,
			Environment: DefaultEnvironment,
		},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				SQLitePath:       DefaultSQLitePath,
				PoolSize:         5,
				MaxOverflow:      10,
				PoolTimeout:      30 * time.Second,
				PoolRecycle:      time.Hour,
				StatementTimeout: 30 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    []string{"http://localhost:3000", "http://localhost:8080"},
		},
		OpenAI: OpenAI{
			BaseURL:        DefaultOpenAIBaseURL,
			Timeout:        60 * time.Second,
			MaxRetries:     3,
			RetryMinWait:   4 * time.Second,
			RetryMaxWait:   60 * time.Second,
			ModelsCacheTTL: 10 * time.Minute,
		},
		RateLimit: RateLimit{
			Enabled:   &enabled,
			KeyPrefix: DefaultRateLimitKey,
		},
		Workers: Workers{
			LimiterCleanupInterval: time.Minute,
			LimiterIdleTTL:         10 * time.Minute,
			HealthProbeInterval:    30 * time.Second,
		},
	}
}
