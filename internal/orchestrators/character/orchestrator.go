// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character")

const idPrefix = "char"

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	EventBus      events.EventBus

	// StatsCache is optional; without it every calculation runs the engine
	StatsCache statsrepo.Repository
	// StatsVersion salts cache fingerprints so differently configured
	// engines never share entries
	StatsVersion string

	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
	// IDGenerator defaults to prefixed UUIDs
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	statsCache    statsrepo.Repository
	statsVersion  string
	engine        engine.Engine
	eventBus      events.EventBus
	diceRoller    dice.Roller
	idGenerator   idgen.Generator
	clock         clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		statsCache:    cfg.StatsCache,
		statsVersion:  cfg.StatsVersion,
		engine:        cfg.Engine,
		eventBus:      cfg.EventBus,
		diceRoller:    cfg.DiceRoller,
		idGenerator:   cfg.IDGenerator,
		clock:         cfg.Clock,
	}
	if o.diceRoller == nil {
		o.diceRoller = dice.DefaultRoller
	}
	if o.idGenerator == nil {
		o.idGenerator = idgen.NewUUID(idPrefix)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter validates and stores a new character snapshot
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	char, err := input.Character.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy character")
	}
	if char.ID == "" {
		char.ID = o.idGenerator.Generate()
	}

	if _, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Character: char}); err != nil {
		return nil, errors.Wrap(err, "invalid character")
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", out.Character.ID,
		"player_id", out.Character.PlayerID)

	return &character.CreateCharacterOutput{Character: out.Character}, nil
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{Character: char}, nil
}

// UpdateCharacter validates and replaces a stored snapshot
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *character.UpdateCharacterInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := input.Character.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy character")
	}

	if _, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Character: char}); err != nil {
		return nil, errors.Wrap(err, "invalid character")
	}

	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character").
			WithMeta("character_id", char.ID)
	}

	o.dropCachedStats(ctx, out.Character.ID)

	return &character.UpdateCharacterOutput{Character: out.Character}, nil
}

// DeleteCharacter removes a character and its cached stats
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character").
			WithMeta("character_id", input.CharacterID)
	}

	o.dropCachedStats(ctx, input.CharacterID)

	return &character.DeleteCharacterOutput{
		Message: "character " + input.CharacterID + " deleted",
	}, nil
}

// ListCharacters lists characters for a player or a campaign
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch {
	case input.PlayerID != "" && input.CampaignID != "":
		return nil, errors.InvalidArgument("only one of player ID and campaign ID may be set")
	case input.PlayerID != "":
		out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list characters").WithMeta("player_id", input.PlayerID)
		}
		return &character.ListCharactersOutput{Characters: out.Characters}, nil
	case input.CampaignID != "":
		out, err := o.characterRepo.ListByCampaignID(ctx, characterrepo.ListByCampaignIDInput{
			CampaignID: input.CampaignID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list characters").WithMeta("campaign_id", input.CampaignID)
		}
		return &character.ListCharactersOutput{Characters: out.Characters}, nil
	default:
		return nil, errors.InvalidArgument("player ID or campaign ID is required")
	}
}

func (o *Orchestrator) loadCharacter(ctx context.Context, characterID string) (*dnd5e.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character").
			WithMeta("character_id", characterID)
	}
	return out.Character, nil
}

func (o *Orchestrator) dropCachedStats(ctx context.Context, characterID string) {
	if o.statsCache == nil {
		return
	}
	if _, err := o.statsCache.Delete(ctx, statsrepo.DeleteInput{CharacterID: characterID}); err != nil {
		slog.WarnContext(ctx, "failed to drop cached stats",
			"character_id", characterID,
			"error", err.Error())
	}
}
