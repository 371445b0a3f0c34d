package character

import (
	"context"
	"encoding/json"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	characterKeyPrefix  = "character:"
	playerIndexPrefix   = "character:player:"
	campaignIndexPrefix = "character:campaign:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	char := input.Character

	key := characterKeyPrefix + char.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", char.ID)
	}

	now := r.clock.Now().Unix()
	if char.CreatedAt == 0 {
		char.CreatedAt = now
	}
	char.UpdatedAt = now

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if char.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+char.PlayerID, char.ID)
	}
	if char.CampaignID != "" {
		pipe.SAdd(ctx, campaignIndexPrefix+char.CampaignID, char.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: char}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	char, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	char := input.Character

	existing, err := r.load(ctx, char.ID)
	if err != nil {
		return nil, err
	}

	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+char.ID, data, 0)
	moveIndex(ctx, pipe, playerIndexPrefix, existing.PlayerID, char.PlayerID, char.ID)
	moveIndex(ctx, pipe, campaignIndexPrefix, existing.CampaignID, char.CampaignID, char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: char}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	char, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	if char.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+char.PlayerID, input.ID)
	}
	if char.CampaignID != "" {
		pipe.SRem(ctx, campaignIndexPrefix+char.CampaignID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	characters, err := r.listByIndex(ctx, playerIndexPrefix+input.PlayerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by player",
			"player_id", input.PlayerID,
			"error", err.Error())
		return nil, err
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}

func (r *redisRepository) ListByCampaignID(
	ctx context.Context,
	input ListByCampaignIDInput,
) (*ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	characters, err := r.listByIndex(ctx, campaignIndexPrefix+input.CampaignID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by campaign",
			"campaign_id", input.CampaignID,
			"error", err.Error())
		return nil, err
	}

	return &ListByCampaignIDOutput{Characters: characters}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*dnd5e.Character, error) {
	result, err := r.client.Get(ctx, characterKeyPrefix+id).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char dnd5e.Character
	if err := json.Unmarshal(result, &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}
	return &char, nil
}

// listByIndex loads every character in an index set, dropping IDs whose
// character no longer exists
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*dnd5e.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*dnd5e.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, char)
	}

	slog.DebugContext(ctx, "listed characters from index",
		"index_key", indexKey,
		"count", len(characters))

	return characters, nil
}

// moveIndex re-files id when the indexed owner changed
func moveIndex(ctx context.Context, pipe goredis.Pipeliner, prefix, from, to, id string) {
	if from == to {
		return
	}
	if from != "" {
		pipe.SRem(ctx, prefix+from, id)
	}
	if to != "" {
		pipe.SAdd(ctx, prefix+to, id)
	}
}
