package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// CalculateCharacterStatsInput contains the snapshot to calculate
type CalculateCharacterStatsInput struct {
	Character *dnd5e.Character
}

// CalculateCharacterStatsOutput contains calculated character stats
type CalculateCharacterStatsOutput struct {
	Stats dnd5e.CalculatedStats
	// Defaulted lists snapshot fields that were missing and replaced by defaults
	Defaulted []string
	Warnings  []ValidationWarning
}

// ValidateCharacterInput contains the snapshot to validate
type ValidateCharacterInput struct {
	Character *dnd5e.Character
}

// ValidateCharacterOutput contains non-fatal findings
type ValidateCharacterOutput struct {
	Warnings []ValidationWarning
}

// ValidationWarning describes something suspicious that does not block calculation
type ValidationWarning struct {
	Field   string
	Message string
	Code    string
}

// Warning codes
const (
	WarningMultipleBodyArmor = "MULTIPLE_BODY_ARMOR"
	WarningMultipleShields   = "MULTIPLE_SHIELDS"
	WarningLevelMismatch     = "LEVEL_EXPERIENCE_MISMATCH"
)
