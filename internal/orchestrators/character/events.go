package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Event types published on the bus
const (
	EventStatsCalculated  = "character.stats.calculated"
	EventPropertyChanged  = "character.property.changed"
	EventPropertyReverted = "character.property.reverted"
	EventHitPointsRolled  = "character.hit_points.rolled"
)

// Event context keys
const (
	EventKeyFingerprint = "fingerprint"
	EventKeyCached      = "cached"
	EventKeyArmorClass  = "armor_class"
	EventKeyPropertyID  = "property_id"
	EventKeyChange      = "change"
	EventKeyError       = "error"
	EventKeyRolls       = "rolls"
	EventKeyMaxHP       = "max_hp"
)

// EntityTypeCharacter is the core.Entity type of a CharacterEntity
const EntityTypeCharacter = "character"

// CharacterEntity exposes a character snapshot as an event source
type CharacterEntity struct {
	character *dnd5e.Character
}

// NewCharacterEntity wraps a character
func NewCharacterEntity(character *dnd5e.Character) *CharacterEntity {
	return &CharacterEntity{character: character}
}

// GetID returns the character ID
func (e *CharacterEntity) GetID() string {
	if e.character == nil {
		return ""
	}
	return e.character.ID
}

// GetType returns EntityTypeCharacter
func (e *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// Character returns the wrapped snapshot
func (e *CharacterEntity) Character() *dnd5e.Character {
	return e.character
}

var _ core.Entity = (*CharacterEntity)(nil)

// publish sends an event about the character. Delivery failures are logged,
// never returned: the state change has already happened.
func (o *Orchestrator) publish(ctx context.Context, eventType string, char *dnd5e.Character, data map[string]any) {
	event := events.NewGameEvent(eventType, NewCharacterEntity(char), nil)
	for key, value := range data {
		event.Context().Set(key, value)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event_type", eventType,
			"character_id", char.ID,
			"error", err.Error())
	}
}
