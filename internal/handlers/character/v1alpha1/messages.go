package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// GetCharacterRequest identifies one character
type GetCharacterRequest struct {
	CharacterID string `json:"characterId"`
}

// CharacterRequest carries a full snapshot for create and update
type CharacterRequest struct {
	Character *dnd5e.Character `json:"character"`
}

// CharacterResponse returns a snapshot
type CharacterResponse struct {
	Character *dnd5e.Character `json:"character"`
}

// DeleteCharacterResponse confirms a delete
type DeleteCharacterResponse struct {
	Message string `json:"message"`
}

// ListCharactersRequest filters by player or campaign
type ListCharactersRequest struct {
	PlayerID   string `json:"playerId,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
}

// ListCharactersResponse returns the matching snapshots
type ListCharactersResponse struct {
	Characters []*dnd5e.Character `json:"characters"`
}

// CalculateStatsRequest asks for a stored character's stats
type CalculateStatsRequest struct {
	CharacterID string `json:"characterId"`
	SkipCache   bool   `json:"skipCache,omitempty"`
}

// Warning is a non-fatal finding
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// FieldError is a rule violation on one field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StatsResponse returns calculated stats
type StatsResponse struct {
	Character    *dnd5e.Character       `json:"character,omitempty"`
	Stats        *dnd5e.CalculatedStats `json:"stats"`
	Defaulted    []string               `json:"defaulted,omitempty"`
	Warnings     []Warning              `json:"warnings,omitempty"`
	Cached       bool                   `json:"cached,omitempty"`
	CalculatedAt int64                  `json:"calculatedAt,omitempty"`
}

// SetPropertyStateRequest changes one property
type SetPropertyStateRequest struct {
	CharacterID string `json:"characterId"`
	PropertyID  string `json:"propertyId"`
	Change      string `json:"change"`
}

// RollHitPointsResponse returns the rolled maximum
type RollHitPointsResponse struct {
	Character *dnd5e.Character `json:"character"`
	Rolls     []int32          `json:"rolls"`
	MaxHP     int32            `json:"maxHp"`
}

// ValidateCharacterRequest validates a snapshot or a stored character
type ValidateCharacterRequest struct {
	CharacterID string           `json:"characterId,omitempty"`
	Character   *dnd5e.Character `json:"character,omitempty"`
}

// ValidateCharacterResponse reports the validation result
type ValidateCharacterResponse struct {
	IsValid  bool         `json:"isValid"`
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []Warning    `json:"warnings,omitempty"`
}

// ToStruct encodes a message as a google.protobuf.Struct
func ToStruct(msg any) (*structpb.Struct, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return out, nil
}

// FromStruct decodes a google.protobuf.Struct into msg
func FromStruct(in *structpb.Struct, msg any) error {
	if in == nil {
		in = &structpb.Struct{}
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to decode message")
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}
