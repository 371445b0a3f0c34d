package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// Options tune the aggregate calculation
type Options struct {
	ArmorSelection ArmorSelection
}

// CalculateAllStats derives every statistic for the snapshot with default options
func CalculateAllStats(character *dnd5e.Character) dnd5e.CalculatedStats {
	return CalculateAllStatsWithOptions(character, Options{})
}

// CalculateAllStatsWithOptions derives every statistic for the snapshot.
//
// Modifiers are collected and abilities resolved once; every calculator then
// reads from those. The function never fails: missing fields fall back to
// their documented defaults.
func CalculateAllStatsWithOptions(character *dnd5e.Character, opts Options) dnd5e.CalculatedStats {
	selection := opts.ArmorSelection
	if !selection.IsValid() {
		selection = ArmorSelectionFirst
	}

	mods := GetAllModifiers(character)
	scores := resolveAbilityScores(character, mods)
	level := characterLevel(character)
	profBonus := GetProficiencyBonus(level)

	skills := skillModifiers(character, scores, mods)
	capacity := CalculateCarryingCapacity(scores)
	load := CalculateCurrentLoad(character)

	stats := dnd5e.CalculatedStats{
		Level:             level,
		ProficiencyBonus:  profBonus,
		Abilities:         scores,
		AbilityModifiers:  CalculateAbilityModifiers(scores),
		SkillModifiers:    skills,
		SavingThrows:      savingThrows(character, scores, mods),
		ArmorClass:        armorClass(character, scores, mods, selection),
		Initiative:        initiative(scores, mods),
		Speed:             speed(character, mods),
		PassivePerception: passivePerception(skills[dnd5e.SkillPerception], mods),
		CarryingCapacity:  capacity,
		CurrentLoad:       load,
		Encumbered:        IsEncumbered(load, capacity),
		Attacks:           weaponAttacks(character, scores, profBonus),
	}

	if character != nil {
		stats.ExperienceToNextLevel = ExperienceToNextLevel(character.ExperiencePoints)
	}

	if casting := CalculateSpellcasting(character, scores); casting != nil {
		dc, attack := casting.SaveDC, casting.AttackBonus
		stats.SpellSaveDC = &dc
		stats.SpellAttackBonus = &attack
	}

	return stats
}
