package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// passivePerceptionAdvantage is the flat adjustment for (dis)advantage on
// passive checks
const passivePerceptionAdvantage int32 = 5

// SkillProficiencyLevel returns how much of the proficiency bonus a skill
// gets. Expertise wins over proficiency; Jack of All Trades gives half to
// skills the character is not proficient in.
func SkillProficiencyLevel(character *dnd5e.Character, skill dnd5e.Skill) ProficiencyLevel {
	if character == nil {
		return ProficiencyNone
	}
	switch {
	case character.HasSkillExpertise(skill):
		return ProficiencyExpertise
	case character.HasSkillProficiency(skill):
		return ProficiencyProficient
	case character.JackOfAllTrades:
		return ProficiencyHalf
	default:
		return ProficiencyNone
	}
}

// CalculateSkillModifier returns the total modifier for one skill
func CalculateSkillModifier(character *dnd5e.Character, skill dnd5e.Skill) int32 {
	mods := GetAllModifiers(character)
	scores := resolveAbilityScores(character, mods)
	return skillModifier(character, scores, mods, skill)
}

// CalculateSkillModifiers returns the modifier of every skill
func CalculateSkillModifiers(character *dnd5e.Character) map[dnd5e.Skill]int32 {
	mods := GetAllModifiers(character)
	return skillModifiers(character, resolveAbilityScores(character, mods), mods)
}

func skillModifiers(
	character *dnd5e.Character,
	scores dnd5e.AbilityScores,
	mods []dnd5e.Modifier,
) map[dnd5e.Skill]int32 {
	out := make(map[dnd5e.Skill]int32, len(Skills))
	for _, skill := range Skills {
		out[skill] = skillModifier(character, scores, mods, skill)
	}
	return out
}

func skillModifier(
	character *dnd5e.Character,
	scores dnd5e.AbilityScores,
	mods []dnd5e.Modifier,
	skill dnd5e.Skill,
) int32 {
	ability, ok := SkillAbilities[skill]
	var base int32
	if ok {
		base = GetAbilityModifier(scores.Get(ability))
	}
	profBonus := GetProficiencyBonus(characterLevel(character))
	base += SkillProficiencyLevel(character, skill).Apply(profBonus)
	return ApplyModifiers(base, FilterModifiersByTarget(mods, string(skill)))
}

// CalculateSavingThrow returns the saving throw modifier for one ability
func CalculateSavingThrow(character *dnd5e.Character, ability dnd5e.Ability) int32 {
	mods := GetAllModifiers(character)
	return savingThrow(character, resolveAbilityScores(character, mods), mods, ability)
}

func savingThrows(
	character *dnd5e.Character,
	scores dnd5e.AbilityScores,
	mods []dnd5e.Modifier,
) map[dnd5e.Ability]int32 {
	out := make(map[dnd5e.Ability]int32, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		out[ability] = savingThrow(character, scores, mods, ability)
	}
	return out
}

func savingThrow(
	character *dnd5e.Character,
	scores dnd5e.AbilityScores,
	mods []dnd5e.Modifier,
	ability dnd5e.Ability,
) int32 {
	base := GetAbilityModifier(scores.Get(ability))
	if character != nil && character.HasSavingThrowProficiency(ability) {
		base += GetProficiencyBonus(characterLevel(character))
	}
	return ApplyModifiers(base, FilterModifiersByTarget(mods, ability.SaveTarget()))
}

// CalculatePassivePerception returns 10 + the perception skill, adjusted by
// 5 when perception has advantage or disadvantage but not both
func CalculatePassivePerception(character *dnd5e.Character) int32 {
	mods := GetAllModifiers(character)
	scores := resolveAbilityScores(character, mods)
	return passivePerception(skillModifier(character, scores, mods, dnd5e.SkillPerception), mods)
}

func passivePerception(perceptionSkill int32, mods []dnd5e.Modifier) int32 {
	total := 10 + perceptionSkill
	switch resolveAdvantage(FilterModifiersByTarget(mods, dnd5e.TargetPerception)) {
	case advantageOnly:
		total += passivePerceptionAdvantage
	case disadvantageOnly:
		total -= passivePerceptionAdvantage
	}
	return total
}
