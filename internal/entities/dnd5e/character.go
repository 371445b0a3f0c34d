// Package dnd5e implements the D&D 5e entities
package dnd5e

import "encoding/json"

// Character is the raw character snapshot.
// NOTE: This is a data-only struct. All derived numbers (AC, skills, saves,
// etc.) are computed by internal/engine, never stored here.
type Character struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	PlayerID         string `json:"playerId,omitempty"`
	CampaignID       string `json:"campaignId,omitempty"`
	Level            int32  `json:"level,omitempty"`
	ExperiencePoints int32  `json:"experiencePoints,omitempty"`
	HitDieSize       int32  `json:"hitDieSize,omitempty"`
	CurrentHP        int32  `json:"currentHp,omitempty"`
	MaxHP            int32  `json:"maxHp,omitempty"`

	// BaseAbilities is nil when the snapshot has no scores yet
	BaseAbilities *AbilityScores    `json:"baseAbilities,omitempty"`
	RacialBonuses map[Ability]int32 `json:"racialBonuses,omitempty"`

	Properties Properties `json:"properties,omitempty"`

	SkillProficiencies       []Skill   `json:"skillProficiencies,omitempty"`
	SkillExpertise           []Skill   `json:"skillExpertise,omitempty"`
	SavingThrowProficiencies []Ability `json:"savingThrowProficiencies,omitempty"`
	JackOfAllTrades          bool      `json:"jackOfAllTrades,omitempty"`

	// Speed is nil when unset; the engine then uses DefaultSpeed
	Speed        *int32        `json:"speed,omitempty"`
	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// Spellcasting describes a character's casting ability and slots
type Spellcasting struct {
	Ability      Ability         `json:"ability"`
	SlotsByLevel map[int32]int32 `json:"slotsByLevel,omitempty"`
}

// HasSkillProficiency reports whether the character is proficient in the skill
func (c *Character) HasSkillProficiency(skill Skill) bool {
	return containsSkill(c.SkillProficiencies, skill)
}

// HasSkillExpertise reports whether the character has expertise in the skill
func (c *Character) HasSkillExpertise(skill Skill) bool {
	return containsSkill(c.SkillExpertise, skill)
}

// HasSavingThrowProficiency reports whether the character is proficient in the save
func (c *Character) HasSavingThrowProficiency(ability Ability) bool {
	for _, a := range c.SavingThrowProficiencies {
		if a == ability {
			return true
		}
	}
	return false
}

// FindProperty returns the property with the given ID
func (c *Character) FindProperty(id string) (Property, bool) {
	return c.Properties.Find(id)
}

// Clone returns a deep copy of the snapshot. Property values are copied
// through their JSON encoding so the copy shares nothing with c.
func (c *Character) Clone() (*Character, error) {
	if c == nil {
		return nil, nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var out Character
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func containsSkill(skills []Skill, skill Skill) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}
