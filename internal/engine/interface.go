// Package engine computes derived D&D 5e character statistics.
//
// The calculators are pure functions over a dnd5e.Character snapshot: they
// perform no I/O, share no state and never fail. Missing fields fall back to
// defaults (ability scores of 10, level 1, speed 30, no properties). The
// Engine interface wraps them for injection into orchestrators and adds
// reporting of those defaults plus strict validation.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"
)

// Engine provides character rules calculations
type Engine interface {
	// CalculateCharacterStats derives the full stat block for a snapshot.
	// Returns errors.InvalidArgument only when the input itself is missing.
	CalculateCharacterStats(
		ctx context.Context,
		input *CalculateCharacterStatsInput,
	) (*CalculateCharacterStatsOutput, error)

	// ValidateCharacter checks a snapshot against the rules instead of
	// silently defaulting. Returns errors.InvalidArgument listing every
	// offending field.
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)

	// Utility methods
	CalculateMaxHP(hitDieSize, conMod, level int32, useAverage bool) int32
	CalculateProficiencyBonus(level int32) int32
	CalculateAbilityModifier(score int32) int32
}
