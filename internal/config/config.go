// Package config provides configuration loading for kmapd.
package config

import (
	"fmt"
	"time"

	"github.com/fyrsmithlabs/kmapd/internal/logging"
)

// Config is the full kmapd configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Resolver ResolverConfig `koanf:"resolver"`
	Mapping  MappingConfig  `koanf:"mapping"`
	Logging  logging.Config `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// ResolverConfig tunes the resolution engine.
type ResolverConfig struct {
	CacheCapacity       int     `koanf:"cache_capacity"`
	SimilarityThreshold float64 `koanf:"similarity_threshold"`
	MaxSuggestions      int     `koanf:"max_suggestions"`
}

// MappingConfig points at optional external mapping table files, loaded
// after the built-in data sets.
type MappingConfig struct {
	ExtraTables []string `koanf:"extra_tables"`
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if c.Resolver.CacheCapacity < 0 {
		return fmt.Errorf("cache capacity must be non-negative, got %d", c.Resolver.CacheCapacity)
	}
	if c.Resolver.SimilarityThreshold <= 0 || c.Resolver.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1), got %v", c.Resolver.SimilarityThreshold)
	}
	if c.Resolver.MaxSuggestions < 1 {
		return fmt.Errorf("max suggestions must be positive, got %d", c.Resolver.MaxSuggestions)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9120
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Resolver.CacheCapacity == 0 {
		cfg.Resolver.CacheCapacity = 1000
	}
	if cfg.Resolver.SimilarityThreshold == 0 {
		cfg.Resolver.SimilarityThreshold = 0.5
	}
	if cfg.Resolver.MaxSuggestions == 0 {
		cfg.Resolver.MaxSuggestions = 5
	}
	if cfg.Logging.Format == "" {
		cfg.Logging = *logging.DefaultConfig()
	}
}
