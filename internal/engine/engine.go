package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Fields reported in CalculateCharacterStatsOutput.Defaulted
const (
	FieldBaseAbilities = "baseAbilities"
	FieldLevel         = "level"
	FieldSpeed         = "speed"
	FieldProperties    = "properties"
)

const (
	minAbilityScore int32 = 1
	maxAbilityScore int32 = 30
)

type engine struct {
	armorSelection ArmorSelection
}

// Config configures the engine
type Config struct {
	// ArmorSelection picks the body armor when more than one is equipped.
	// Empty means ArmorSelectionFirst.
	ArmorSelection ArmorSelection
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if cfg.ArmorSelection != "" && !cfg.ArmorSelection.IsValid() {
		vb.InvalidField("ArmorSelection", fmt.Sprintf("unknown selection %q", cfg.ArmorSelection))
	}
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	selection := cfg.ArmorSelection
	if selection == "" {
		selection = ArmorSelectionFirst
	}

	return &engine{armorSelection: selection}, nil
}

func (e *engine) CalculateAbilityModifier(score int32) int32 {
	return GetAbilityModifier(score)
}

func (e *engine) CalculateProficiencyBonus(level int32) int32 {
	return GetProficiencyBonus(level)
}

func (e *engine) CalculateMaxHP(hitDieSize, conMod, level int32, useAverage bool) int32 {
	return CalculateMaxHP(hitDieSize, conMod, level, useAverage)
}

func (e *engine) CalculateCharacterStats(
	_ context.Context,
	input *CalculateCharacterStatsInput,
) (*CalculateCharacterStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	return &CalculateCharacterStatsOutput{
		Stats:     CalculateAllStatsWithOptions(input.Character, Options{ArmorSelection: e.armorSelection}),
		Defaulted: DefaultedFields(input.Character),
		Warnings:  equipmentWarnings(input.Character),
	}, nil
}

func (e *engine) ValidateCharacter(
	_ context.Context,
	input *ValidateCharacterInput,
) (*ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	char := input.Character
	vb := errors.NewValidationBuilder()

	if char.Level < 1 || char.Level > dnd5e.MaxLevel {
		vb.Fieldf(FieldLevel, "must be between 1 and %d", dnd5e.MaxLevel)
	}

	if char.HitDieSize != 0 && !IsValidHitDie(char.HitDieSize) {
		vb.Fieldf("hitDieSize", "must be one of %v", HitDieSizes)
	}

	if char.BaseAbilities == nil {
		vb.RequiredField(FieldBaseAbilities)
	} else {
		for _, ability := range dnd5e.Abilities {
			score := char.BaseAbilities.Get(ability)
			if score < minAbilityScore || score > maxAbilityScore {
				vb.Fieldf(FieldBaseAbilities+"."+string(ability),
					"must be between %d and %d", minAbilityScore, maxAbilityScore)
			}
		}
	}

	for ability := range char.RacialBonuses {
		if !ability.IsValid() {
			vb.InvalidField("racialBonuses", fmt.Sprintf("unknown ability %q", ability))
		}
	}

	if char.Speed != nil && *char.Speed < 0 {
		vb.Field(FieldSpeed, "must not be negative")
	}

	validateSkills(vb, "skillProficiencies", char.SkillProficiencies)
	validateSkills(vb, "skillExpertise", char.SkillExpertise)
	for _, ability := range char.SavingThrowProficiencies {
		if !ability.IsValid() {
			vb.InvalidField("savingThrowProficiencies", fmt.Sprintf("unknown ability %q", ability))
		}
	}

	if char.Spellcasting != nil && !char.Spellcasting.Ability.IsValid() {
		vb.InvalidField("spellcasting.ability", fmt.Sprintf("unknown ability %q", char.Spellcasting.Ability))
	}

	validateProperties(vb, char.Properties)

	if armor := EquippedBodyArmor(char); len(armor) > 1 {
		vb.Fieldf(FieldProperties, "at most one body armor may be equipped, found %d", len(armor))
	}
	if shields := EquippedShields(char); len(shields) > 1 {
		vb.Fieldf(FieldProperties, "at most one shield may be equipped, found %d", len(shields))
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	var warnings []ValidationWarning
	if expected := LevelForExperience(char.ExperiencePoints); expected != char.Level {
		warnings = append(warnings, ValidationWarning{
			Field:   FieldLevel,
			Message: fmt.Sprintf("level %d does not match %d experience points (level %d)", char.Level, char.ExperiencePoints, expected),
			Code:    WarningLevelMismatch,
		})
	}
	for _, skill := range char.SkillExpertise {
		if !char.HasSkillProficiency(skill) {
			warnings = append(warnings, ValidationWarning{
				Field:   "skillExpertise",
				Message: fmt.Sprintf("expertise in %s without proficiency", skill),
			})
		}
	}

	return &ValidateCharacterOutput{Warnings: warnings}, nil
}

// DefaultedFields lists the snapshot fields the calculators will replace with defaults
func DefaultedFields(character *dnd5e.Character) []string {
	if character == nil {
		return []string{FieldBaseAbilities, FieldLevel, FieldSpeed, FieldProperties}
	}

	var fields []string
	if character.BaseAbilities == nil {
		fields = append(fields, FieldBaseAbilities)
	}
	if character.Level < 1 {
		fields = append(fields, FieldLevel)
	}
	if character.Speed == nil {
		fields = append(fields, FieldSpeed)
	}
	if character.Properties == nil {
		fields = append(fields, FieldProperties)
	}
	return fields
}

func equipmentWarnings(character *dnd5e.Character) []ValidationWarning {
	var warnings []ValidationWarning

	if armor := EquippedBodyArmor(character); len(armor) > 1 {
		names := make([]string, 0, len(armor))
		for _, a := range armor {
			names = append(names, a.ID)
		}
		warnings = append(warnings, ValidationWarning{
			Field:   FieldProperties,
			Message: "multiple body armors equipped: " + strings.Join(names, ", "),
			Code:    WarningMultipleBodyArmor,
		})
	}

	if shields := EquippedShields(character); len(shields) > 1 {
		warnings = append(warnings, ValidationWarning{
			Field:   FieldProperties,
			Message: fmt.Sprintf("%d shields equipped, only the first counts", len(shields)),
			Code:    WarningMultipleShields,
		})
	}

	return warnings
}

func validateSkills(vb *errors.ValidationBuilder, field string, skills []dnd5e.Skill) {
	for _, skill := range skills {
		if _, ok := SkillAbilities[skill]; !ok {
			vb.InvalidField(field, fmt.Sprintf("unknown skill %q", skill))
		}
	}
}

func validateProperties(vb *errors.ValidationBuilder, properties dnd5e.Properties) {
	seen := make(map[string]bool, len(properties))
	for i, prop := range properties {
		if dnd5e.IsNilProperty(prop) {
			continue
		}
		field := fmt.Sprintf("%s[%d]", FieldProperties, i)

		id := prop.GetID()
		if id == "" {
			vb.RequiredField(field + ".id")
		} else if seen[id] {
			vb.InvalidField(field+".id", fmt.Sprintf("duplicate id %q", id))
		}
		seen[id] = true

		for j, mod := range propertyModifiers(prop) {
			if mod.Target == "" {
				vb.RequiredField(fmt.Sprintf("%s.modifiers[%d].target", field, j))
			}
		}

		if item, ok := prop.(*dnd5e.Item); ok && item.IsArmor() && item.BaseAC < 0 {
			vb.Field(field+".baseAC", "must not be negative")
		}
	}
}

func propertyModifiers(prop dnd5e.Property) []dnd5e.Modifier {
	switch p := prop.(type) {
	case *dnd5e.Item:
		return p.Modifiers
	case *dnd5e.Effect:
		return p.Modifiers
	case *dnd5e.Feature:
		return p.Modifiers
	default:
		return nil
	}
}
