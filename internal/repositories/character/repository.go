// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters for a player
	// Returns errors.InvalidArgument for empty/invalid player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// ListByCampaignID retrieves all characters in a campaign
	// Returns errors.InvalidArgument for empty/invalid campaign IDs
	// Returns errors.Internal for storage failures
	ListByCampaignID(ctx context.Context, input ListByCampaignIDInput) (*ListByCampaignIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *dnd5e.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing characters by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing characters by player
type ListByPlayerIDOutput struct {
	Characters []*dnd5e.Character
}

// ListByCampaignIDInput defines the input for listing characters by campaign
type ListByCampaignIDInput struct {
	CampaignID string
}

// ListByCampaignIDOutput defines the output for listing characters by campaign
type ListByCampaignIDOutput struct {
	Characters []*dnd5e.Character
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errCampaignIDEmpty  = "campaign ID cannot be empty"
)

func validateCharacter(char *dnd5e.Character) error {
	if char == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if char.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}
