package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations accept Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Environment string `json:"environment"`
	} `json:"app,omitempty"`

	Log struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
		Compress   bool   `json:"compress"`
	} `json:"log,omitempty"`

	Auth struct {
		SecretKey     string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DatabaseURL      string   `json:"database_url"`
			PostgresURL      string   `json:"postgres_url"`
			SQLitePath       string   `json:"sqlite_path"`
			PoolSize         int      `json:"pool_size"`
			MaxOverflow      int      `json:"max_overflow"`
			PoolTimeout      Duration `json:"pool_timeout"`
			PoolRecycle      Duration `json:"pool_recycle"`
			Echo             bool     `json:"echo"`
			StatementTimeout Duration `json:"statement_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	OpenAI struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		Organization   string   `json:"organization"`
		Timeout        Duration `json:"timeout"`
		MaxRetries     int      `json:"max_retries"`
		RetryMinWait   Duration `json:"retry_min_wait"`
		RetryMaxWait   Duration `json:"retry_max_wait"`
		ModelsCacheTTL Duration `json:"models_cache_ttl"`
	} `json:"openai,omitempty"`

	RateLimit struct {
		Enabled       *bool  `json:"enabled"`
		RedisAddr     string `json:"redis_addr"`
		RedisPassword string `json:"redis_password"`
		RedisDB       int    `json:"redis_db"`
		KeyPrefix     string `json:"key_prefix"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		LimiterCleanupInterval Duration `json:"limiter_cleanup_interval"`
		LimiterIdleTTL         Duration `json:"limiter_idle_ttl"`
		HealthProbeInterval    Duration `json:"health_probe_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	db := jsonCfg.Storage.DB
	ai := jsonCfg.OpenAI

	cfg := &StructuredConfig{
		App: App{
			Name:        jsonCfg.App.Name,
			Version:     jsonCfg.App.Version,
			Environment: jsonCfg.App.Environment,
		},
		Log: Log{
			Level:      jsonCfg.Log.Level,
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
			Compress:   jsonCfg.Log.Compress,
		},
		Auth: Auth{
			SecretKey:     jsonCfg.Auth.SecretKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DatabaseURL:      db.DatabaseURL,
				PostgresURL:      db.PostgresURL,
				SQLitePath:       db.SQLitePath,
				PoolSize:         db.PoolSize,
				MaxOverflow:      db.MaxOverflow,
				PoolTimeout:      time.Duration(db.PoolTimeout),
				PoolRecycle:      time.Duration(db.PoolRecycle),
				Echo:             db.Echo,
				StatementTimeout: time.Duration(db.StatementTimeout),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		OpenAI: OpenAI{
			APIKey:         ai.APIKey,
			BaseURL:        ai.BaseURL,
			Organization:   ai.Organization,
			Timeout:        time.Duration(ai.Timeout),
			MaxRetries:     ai.MaxRetries,
			RetryMinWait:   time.Duration(ai.RetryMinWait),
			RetryMaxWait:   time.Duration(ai.RetryMaxWait),
			ModelsCacheTTL: time.Duration(ai.ModelsCacheTTL),
		},
		RateLimit: RateLimit{
			Enabled:       jsonCfg.RateLimit.Enabled,
			RedisAddr:     jsonCfg.RateLimit.RedisAddr,
			RedisPassword: jsonCfg.RateLimit.RedisPassword,
			RedisDB:       jsonCfg.RateLimit.RedisDB,
			KeyPrefix:     jsonCfg.RateLimit.KeyPrefix,
		},
		Workers: Workers{
			LimiterCleanupInterval: time.Duration(jsonCfg.Workers.LimiterCleanupInterval),
			LimiterIdleTTL:         time.Duration(jsonCfg.Workers.LimiterIdleTTL),
			HealthProbeInterval:    time.Duration(jsonCfg.Workers.HealthProbeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
