// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Mode selects the Redis deployment topology
type Mode string

// Supported modes
const (
	ModeSingle   Mode = "single"
	ModeCluster  Mode = "cluster"
	ModeFailover Mode = "failover"
)

// Config configures a Redis client
type Config struct {
	Mode      Mode
	Endpoints []string
	// MasterName is required in failover mode; Endpoints are then the sentinels
	MasterName      string
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("redis config is required")
	}

	vb := errors.NewValidationBuilder()
	if len(cfg.Endpoints) == 0 {
		vb.RequiredField("Endpoints")
	}
	switch cfg.Mode {
	case "", ModeSingle, ModeCluster:
	case ModeFailover:
		errors.ValidateRequired("MasterName", cfg.MasterName, vb)
	default:
		vb.InvalidField("Mode", string(cfg.Mode))
	}
	if cfg.PoolSize < 0 {
		vb.Field("PoolSize", "must not be negative")
	}
	return vb.Build()
}

// New creates a client for the configured topology. Single mode uses the
// first endpoint. Redis connects lazily; call Ping to check reachability.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var tlsConfig *tls.Config
	if cfg.UseTLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	switch cfg.Mode {
	case ModeCluster:
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           cfg.Endpoints,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
			MaxRetries:      cfg.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	case ModeFailover:
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:      cfg.MasterName,
			SentinelAddrs:   cfg.Endpoints,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
			MaxRetries:      cfg.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	default:
		return redis.NewClient(&redis.Options{
			Addr:            cfg.Endpoints[0],
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
			MaxRetries:      cfg.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	}
}

// NewClient creates a single-instance client
func NewClient(endpoint string) (Client, error) {
	return New(&Config{Mode: ModeSingle, Endpoints: []string{endpoint}})
}

// Ping checks that the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis ping failed")
	}
	return nil
}
