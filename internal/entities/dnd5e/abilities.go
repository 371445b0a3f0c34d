package dnd5e

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// DefaultAbilityScores returns scores of 10 across the board
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// Get returns the score for the given ability, 0 for an unknown ability
func (a AbilityScores) Get(ability Ability) int32 {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set stores the score for the given ability. Unknown abilities are ignored.
func (a *AbilityScores) Set(ability Ability, value int32) {
	switch ability {
	case AbilityStrength:
		a.Strength = value
	case AbilityDexterity:
		a.Dexterity = value
	case AbilityConstitution:
		a.Constitution = value
	case AbilityIntelligence:
		a.Intelligence = value
	case AbilityWisdom:
		a.Wisdom = value
	case AbilityCharisma:
		a.Charisma = value
	}
}
