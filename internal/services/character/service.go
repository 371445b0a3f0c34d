// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/services/character Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Service defines the interface for character operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// Derived stats
	CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error)
	PreviewStats(ctx context.Context, input *PreviewStatsInput) (*PreviewStatsOutput, error)

	// Property state
	SetPropertyState(ctx context.Context, input *SetPropertyStateInput) (*SetPropertyStateOutput, error)

	// Hit points
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)

	// Validation
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
}

// Lifecycle types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	// Character ID is generated when empty
	Character *dnd5e.Character
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *dnd5e.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// UpdateCharacterInput defines the request for replacing a character snapshot
type UpdateCharacterInput struct {
	Character *dnd5e.Character
}

// UpdateCharacterOutput defines the response for replacing a character snapshot
type UpdateCharacterOutput struct {
	Character *dnd5e.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Message string
}

// ListCharactersInput defines the request for listing characters.
// Exactly one of PlayerID and CampaignID must be set.
type ListCharactersInput struct {
	PlayerID   string
	CampaignID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// Stats types

// CalculateStatsInput defines the request for calculating a stored character's stats
type CalculateStatsInput struct {
	CharacterID string
	// SkipCache forces a fresh calculation
	SkipCache bool
}

// CalculateStatsOutput defines the response for calculating stats
type CalculateStatsOutput struct {
	Character *dnd5e.Character
	Stats     *dnd5e.CalculatedStats
	// Defaulted lists snapshot fields replaced by defaults
	Defaulted []string
	Warnings  []ValidationWarning
	// Cached is true when the stats came from the cache
	Cached       bool
	CalculatedAt time.Time
}

// PreviewStatsInput defines the request for calculating an unsaved snapshot
type PreviewStatsInput struct {
	Character *dnd5e.Character
}

// PreviewStatsOutput defines the response for calculating an unsaved snapshot
type PreviewStatsOutput struct {
	Stats     *dnd5e.CalculatedStats
	Defaulted []string
	Warnings  []ValidationWarning
}

// Property types

// PropertyChange is a state transition on a character property
type PropertyChange string

// Property changes
const (
	PropertyChangeEquip      PropertyChange = "equip"
	PropertyChangeUnequip    PropertyChange = "unequip"
	PropertyChangeAttune     PropertyChange = "attune"
	PropertyChangeUnattune   PropertyChange = "unattune"
	PropertyChangeActivate   PropertyChange = "activate"
	PropertyChangeDeactivate PropertyChange = "deactivate"
)

// PropertyChanges lists every valid change
var PropertyChanges = []PropertyChange{
	PropertyChangeEquip,
	PropertyChangeUnequip,
	PropertyChangeAttune,
	PropertyChangeUnattune,
	PropertyChangeActivate,
	PropertyChangeDeactivate,
}

// IsValid reports whether c is a known change
func (c PropertyChange) IsValid() bool {
	for _, known := range PropertyChanges {
		if c == known {
			return true
		}
	}
	return false
}

// SetPropertyStateInput defines the request for changing a property's state
type SetPropertyStateInput struct {
	CharacterID string
	PropertyID  string
	Change      PropertyChange
}

// SetPropertyStateOutput defines the response for changing a property's state
type SetPropertyStateOutput struct {
	Character *dnd5e.Character
	Stats     *dnd5e.CalculatedStats
	Warnings  []ValidationWarning
}

// Hit point types

// RollHitPointsInput defines the request for rolling maximum hit points
type RollHitPointsInput struct {
	CharacterID string
}

// RollHitPointsOutput defines the response for rolling maximum hit points
type RollHitPointsOutput struct {
	Character *dnd5e.Character
	// Rolls holds one die result per level after the first
	Rolls []int32
	MaxHP int32
}

// Validation types

// ValidateCharacterInput defines the request for validating a character.
// Character takes precedence over CharacterID when both are set.
type ValidateCharacterInput struct {
	CharacterID string
	Character   *dnd5e.Character
}

// ValidateCharacterOutput defines the response for validating a character
type ValidateCharacterOutput struct {
	IsValid  bool
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// ValidationError defines a validation error
type ValidationError struct {
	Field   string
	Message string
}

// ValidationWarning defines a validation warning
type ValidationWarning struct {
	Field   string
	Message string
	Type    string
}
