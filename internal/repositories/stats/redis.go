package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	statsKeyPrefix = "character_stats:"
	defaultTTL     = 10 * time.Minute

	errCharacterIDEmpty = "character ID cannot be empty"
)

// entry is the stored form of a cache record
type entry struct {
	Fingerprint string                `json:"fingerprint"`
	Stats       dnd5e.CalculatedStats `json:"stats"`
	Defaulted   []string              `json:"defaulted,omitempty"`
	Warnings    []Warning             `json:"warnings,omitempty"`
	CachedAt    int64                 `json:"cachedAt"`
}

// Config holds the configuration for the Redis stats cache
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to ten minutes
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("TTL must not be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis-backed stats cache
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{client: cfg.Client, clock: c, ttl: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := r.client.Get(ctx, statsKeyPrefix+input.CharacterID).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no cached stats for character %s", input.CharacterID)
		}
		return nil, errors.Wrap(err, "failed to read cached stats")
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		slog.WarnContext(ctx, "dropping unreadable stats cache entry",
			"character_id", input.CharacterID,
			"error", err.Error())
		r.client.Del(ctx, statsKeyPrefix+input.CharacterID)
		return nil, errors.NotFoundf("no cached stats for character %s", input.CharacterID)
	}

	if e.Fingerprint != input.Fingerprint {
		return nil, errors.NotFoundf("cached stats for character %s are stale", input.CharacterID).
			WithMeta("cached_fingerprint", e.Fingerprint)
	}

	return &GetOutput{
		Stats:     &e.Stats,
		Defaulted: e.Defaulted,
		Warnings:  e.Warnings,
		CachedAt:  time.Unix(e.CachedAt, 0),
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Stats == nil {
		return nil, errors.InvalidArgument("stats cannot be nil")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}
	now := r.clock.Now()

	data, err := json.Marshal(entry{
		Fingerprint: input.Fingerprint,
		Stats:       *input.Stats,
		Defaulted:   input.Defaulted,
		Warnings:    input.Warnings,
		CachedAt:    now.Unix(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal stats")
	}

	if err := r.client.Set(ctx, statsKeyPrefix+input.CharacterID, data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to cache stats")
	}

	return &PutOutput{ExpiresAt: now.Add(ttl)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if err := r.client.Del(ctx, statsKeyPrefix+input.CharacterID).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to drop cached stats")
	}
	return &DeleteOutput{}, nil
}
