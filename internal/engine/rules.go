package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// SkillAbilities maps every skill to its governing ability
var SkillAbilities = map[dnd5e.Skill]dnd5e.Ability{
	dnd5e.SkillAcrobatics:     dnd5e.AbilityDexterity,
	dnd5e.SkillAnimalHandling: dnd5e.AbilityWisdom,
	dnd5e.SkillArcana:         dnd5e.AbilityIntelligence,
	dnd5e.SkillAthletics:      dnd5e.AbilityStrength,
	dnd5e.SkillDeception:      dnd5e.AbilityCharisma,
	dnd5e.SkillHistory:        dnd5e.AbilityIntelligence,
	dnd5e.SkillInsight:        dnd5e.AbilityWisdom,
	dnd5e.SkillIntimidation:   dnd5e.AbilityCharisma,
	dnd5e.SkillInvestigation:  dnd5e.AbilityIntelligence,
	dnd5e.SkillMedicine:       dnd5e.AbilityWisdom,
	dnd5e.SkillNature:         dnd5e.AbilityIntelligence,
	dnd5e.SkillPerception:     dnd5e.AbilityWisdom,
	dnd5e.SkillPerformance:    dnd5e.AbilityCharisma,
	dnd5e.SkillPersuasion:     dnd5e.AbilityCharisma,
	dnd5e.SkillReligion:       dnd5e.AbilityIntelligence,
	dnd5e.SkillSleightOfHand:  dnd5e.AbilityDexterity,
	dnd5e.SkillStealth:        dnd5e.AbilityDexterity,
	dnd5e.SkillSurvival:       dnd5e.AbilityWisdom,
}

// Skills lists every skill in alphabetical order
var Skills = []dnd5e.Skill{
	dnd5e.SkillAcrobatics,
	dnd5e.SkillAnimalHandling,
	dnd5e.SkillArcana,
	dnd5e.SkillAthletics,
	dnd5e.SkillDeception,
	dnd5e.SkillHistory,
	dnd5e.SkillInsight,
	dnd5e.SkillIntimidation,
	dnd5e.SkillInvestigation,
	dnd5e.SkillMedicine,
	dnd5e.SkillNature,
	dnd5e.SkillPerception,
	dnd5e.SkillPerformance,
	dnd5e.SkillPersuasion,
	dnd5e.SkillReligion,
	dnd5e.SkillSleightOfHand,
	dnd5e.SkillStealth,
	dnd5e.SkillSurvival,
}

// ProficiencyLevel scales the proficiency bonus
type ProficiencyLevel float64

// Proficiency levels
const (
	ProficiencyNone       ProficiencyLevel = 0
	ProficiencyHalf       ProficiencyLevel = 0.5
	ProficiencyProficient ProficiencyLevel = 1
	ProficiencyExpertise  ProficiencyLevel = 2
)

// Apply returns floor(bonus * level)
func (l ProficiencyLevel) Apply(bonus int32) int32 {
	return int32(math.Floor(float64(bonus) * float64(l)))
}

// experienceThresholds[i] is the XP needed to reach level i+1
var experienceThresholds = [dnd5e.MaxLevel]int32{
	0, 300, 900, 2700, 6500,
	14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000,
	195000, 225000, 265000, 305000, 355000,
}

// GetAbilityModifier returns floor((score - 10) / 2). Integer division in Go
// truncates toward zero, so odd scores below 10 are adjusted down.
func GetAbilityModifier(score int32) int32 {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// GetProficiencyBonus returns the proficiency bonus for a level:
// +2 at 1-4, rising by one every four levels to +6 at 17-20.
func GetProficiencyBonus(level int32) int32 {
	level = clampLevel(level)
	return 2 + (level-1)/4
}

// ExperienceForLevel returns the XP threshold of the given level
func ExperienceForLevel(level int32) int32 {
	return experienceThresholds[clampLevel(level)-1]
}

// LevelForExperience returns the highest level whose threshold xp meets
func LevelForExperience(xp int32) int32 {
	level := int32(1)
	for i, threshold := range experienceThresholds {
		if xp >= threshold {
			level = int32(i) + 1
		}
	}
	return level
}

// ExperienceToNextLevel returns the XP still needed to gain a level, 0 at max level
func ExperienceToNextLevel(xp int32) int32 {
	level := LevelForExperience(xp)
	if level >= dnd5e.MaxLevel {
		return 0
	}
	return experienceThresholds[level] - xp
}

func clampLevel(level int32) int32 {
	if level < dnd5e.DefaultLevel {
		return dnd5e.DefaultLevel
	}
	if level > dnd5e.MaxLevel {
		return dnd5e.MaxLevel
	}
	return level
}
