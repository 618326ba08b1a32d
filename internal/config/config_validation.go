// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The OpenAI API key is deliberately not required here.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" {
		return fmt.Errorf("%w: version is empty", ErrInvalidAppConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.Auth.SecretKey == "" {
		return fmt.Errorf("%w: secret key is required", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.PoolSize <= 0 || cfg.Storage.DB.MaxOverflow < 0 {
		return fmt.Errorf("%w: pool size must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address", ErrInvalidServerConfigs)
	}

	if cfg.OpenAI.MaxRetries < 0 || cfg.OpenAI.RetryMinWait > cfg.OpenAI.RetryMaxWait {
		return fmt.Errorf("%w: bad retry settings", ErrInvalidOpenAIConfigs)
	}

	return nil
}
