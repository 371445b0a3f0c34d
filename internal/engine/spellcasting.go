package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

const spellSaveDCBase int32 = 8

// SpellcastingStats holds the derived casting numbers
type SpellcastingStats struct {
	SaveDC      int32
	AttackBonus int32
}

// CalculateSpellcasting returns nil when the character cannot cast spells.
// Callers must treat nil as "not applicable", not as zero.
func CalculateSpellcasting(character *dnd5e.Character, scores dnd5e.AbilityScores) *SpellcastingStats {
	if character == nil || character.Spellcasting == nil {
		return nil
	}
	abilityMod := GetAbilityModifier(scores.Get(character.Spellcasting.Ability))
	profBonus := GetProficiencyBonus(characterLevel(character))
	return &SpellcastingStats{
		SaveDC:      spellSaveDCBase + profBonus + abilityMod,
		AttackBonus: profBonus + abilityMod,
	}
}
