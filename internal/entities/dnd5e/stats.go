package dnd5e

// CalculatedStats is the full set of derived numbers for one character
// snapshot. It is always produced whole by the engine.
type CalculatedStats struct {
	Level            int32             `json:"level"`
	ProficiencyBonus int32             `json:"proficiencyBonus"`
	Abilities        AbilityScores     `json:"abilities"`
	AbilityModifiers map[Ability]int32 `json:"abilityModifiers"`

	ArmorClass        int32 `json:"armorClass"`
	Initiative        int32 `json:"initiative"`
	Speed             int32 `json:"speed"`
	PassivePerception int32 `json:"passivePerception"`

	SkillModifiers map[Skill]int32   `json:"skillModifiers"`
	SavingThrows   map[Ability]int32 `json:"savingThrows"`

	// Nil when the character has no spellcasting, never zero
	SpellSaveDC      *int32 `json:"spellSaveDC,omitempty"`
	SpellAttackBonus *int32 `json:"spellAttackBonus,omitempty"`

	CarryingCapacity int32   `json:"carryingCapacity"`
	CurrentLoad      float64 `json:"currentLoad"`
	Encumbered       bool    `json:"encumbered"`

	Attacks               []WeaponAttack `json:"attacks,omitempty"`
	ExperienceToNextLevel int32          `json:"experienceToNextLevel"`
}

// WeaponAttack is the attack and damage bonus of one equipped weapon
type WeaponAttack struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name,omitempty"`
	Ability     Ability `json:"ability"`
	AttackBonus int32   `json:"attackBonus"`
	DamageBonus int32   `json:"damageBonus"`
}
