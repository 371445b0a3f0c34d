package dnd5e

// Ability identifies one of the six ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// IsValid reports whether a is one of the six abilities
func (a Ability) IsValid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// SaveTarget returns the modifier target used for saving throws, e.g. "dexteritySave"
func (a Ability) SaveTarget() string {
	return string(a) + "Save"
}

// Skill identifies a skill by its sheet key
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animalHandling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleightOfHand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// Well-known modifier targets that are not abilities, skills or saves
const (
	TargetArmorClass = "armorClass"
	TargetInitiative = "initiative"
	TargetSpeed      = "speed"
	TargetPerception = "perception"
)

// ArmorCategory classifies armor items
type ArmorCategory string

// Armor categories
const (
	ArmorCategoryLight  ArmorCategory = "light"
	ArmorCategoryMedium ArmorCategory = "medium"
	ArmorCategoryHeavy  ArmorCategory = "heavy"
	ArmorCategoryShield ArmorCategory = "shield"
)

// IsBodyArmor reports whether the category is worn armor rather than a shield
func (c ArmorCategory) IsBodyArmor() bool {
	return c == ArmorCategoryLight || c == ArmorCategoryMedium || c == ArmorCategoryHeavy
}

// Item categories
const (
	ItemCategoryArmor  = "armor"
	ItemCategoryWeapon = "weapon"
	ItemCategoryGear   = "gear"
)

// Weapon ranges
const (
	WeaponRangeMelee  = "melee"
	WeaponRangeRanged = "ranged"
)

// WeaponPropertyFinesse lets a weapon use the better of STR and DEX
const WeaponPropertyFinesse = "finesse"

// Default values applied when a snapshot leaves a field unset
const (
	DefaultAbilityScore int32 = 10
	DefaultSpeed        int32 = 30
	DefaultLevel        int32 = 1
	MaxLevel            int32 = 20
)
