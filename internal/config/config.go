// Package config loads server configuration with viper
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. RPGSHEET_SERVER_PORT
const EnvPrefix = "RPGSHEET"

// Storage drivers
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig selects the character store
type StorageConfig struct {
	// Driver is "redis" or "sqlite"
	Driver string `mapstructure:"driver"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Mode       string   `mapstructure:"mode"`
	Endpoints  []string `mapstructure:"endpoints"`
	MasterName string   `mapstructure:"master_name"`
	PoolSize   int      `mapstructure:"pool_size"`
	UseTLS     bool     `mapstructure:"use_tls"`
}

// SQLiteConfig holds the SQLite database location
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig controls the stats cache. The cache needs Redis.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	StatsTTL time.Duration `mapstructure:"stats_ttl"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is "json" or "text"
	Format string `mapstructure:"format"`
}

// TracingConfig holds OpenTelemetry export settings.
// Tracing is off when Endpoint is empty.
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool   `mapstructure:"insecure"`
}

// EngineConfig tunes the stats engine
type EngineConfig struct {
	// ArmorSelection is "first" or "highest"
	ArmorSelection string `mapstructure:"armor_selection"`
}

// Config is the top-level application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	SQLite  SQLiteConfig  `mapstructure:"sqlite"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

// Validate checks every setting and reports all violations at once
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		vb.Fieldf("server.port", "must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		vb.Field("server.shutdown_timeout", "must not be negative")
	}

	switch c.Storage.Driver {
	case StorageRedis:
		if len(c.Redis.Endpoints) == 0 {
			vb.RequiredField("redis.endpoints")
		}
	case StorageSQLite:
		errors.ValidateRequired("sqlite.path", c.SQLite.Path, vb)
	default:
		vb.Fieldf("storage.driver", "must be one of [redis, sqlite], got %q", c.Storage.Driver)
	}

	switch c.Redis.Mode {
	case "single", "cluster", "failover":
	default:
		vb.Fieldf("redis.mode", "must be one of [single, cluster, failover], got %q", c.Redis.Mode)
	}
	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}

	if c.Cache.Enabled && len(c.Redis.Endpoints) == 0 {
		vb.Field("cache.enabled", "requires redis.endpoints")
	}
	if c.Cache.StatsTTL < 0 {
		vb.Field("cache.stats_ttl", "must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		vb.Fieldf("logging.level", "must be one of [debug, info, warn, error], got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		vb.Fieldf("logging.format", "must be one of [json, text], got %q", c.Logging.Format)
	}

	if c.Engine.ArmorSelection != "first" && c.Engine.ArmorSelection != "highest" {
		vb.Fieldf("engine.armor_selection", "must be one of [first, highest], got %q", c.Engine.ArmorSelection)
	}

	return vb.Build()
}

// Addr returns the gRPC listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// NewViper returns a viper instance with defaults and RPGSHEET_ env overrides
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads the optional config file into v, then unmarshals and validates
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already configured viper instance
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("storage.driver", StorageRedis)

	v.SetDefault("redis.mode", "single")
	v.SetDefault("redis.endpoints", []string{"localhost:6379"})
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("sqlite.path", "rpg-sheet.db")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.stats_ttl", "10m")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("tracing.service_name", "rpg-sheet")

	v.SetDefault("engine.armor_selection", "first")
}
