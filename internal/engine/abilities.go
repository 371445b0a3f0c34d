package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// CalculateAbilityScores resolves the final ability scores:
// base scores (all 10 when missing), then racial bonuses, then live modifiers
// targeting each ability by name.
//
// Every step is additive so the order does not change the result today. A
// future non-additive modifier kind (e.g. "set STR to 19") would make the
// order significant and must be placed deliberately.
func CalculateAbilityScores(character *dnd5e.Character) dnd5e.AbilityScores {
	return resolveAbilityScores(character, GetAllModifiers(character))
}

func resolveAbilityScores(character *dnd5e.Character, mods []dnd5e.Modifier) dnd5e.AbilityScores {
	scores := dnd5e.DefaultAbilityScores()
	if character == nil {
		return scores
	}
	if character.BaseAbilities != nil {
		scores = *character.BaseAbilities
	}

	for _, ability := range dnd5e.Abilities {
		score := scores.Get(ability) + character.RacialBonuses[ability]
		score = ApplyModifiers(score, FilterModifiersByTarget(mods, string(ability)))
		scores.Set(ability, score)
	}
	return scores
}

// CalculateAbilityModifiers returns the modifier of each resolved score
func CalculateAbilityModifiers(scores dnd5e.AbilityScores) map[dnd5e.Ability]int32 {
	mods := make(map[dnd5e.Ability]int32, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		mods[ability] = GetAbilityModifier(scores.Get(ability))
	}
	return mods
}

func characterLevel(character *dnd5e.Character) int32 {
	if character == nil || character.Level < dnd5e.DefaultLevel {
		return dnd5e.DefaultLevel
	}
	return character.Level
}
