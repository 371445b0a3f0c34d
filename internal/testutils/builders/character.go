// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults: level 1,
// all abilities 10, no properties
func NewCharacterBuilder() *CharacterBuilder {
	now := time.Now().Unix()
	abilities := dnd5e.DefaultAbilityScores()
	return &CharacterBuilder{
		character: &dnd5e.Character{
			ID:            "char-test-123",
			Name:          "Test Character",
			PlayerID:      "player-test-123",
			Level:         1,
			HitDieSize:    8,
			BaseAbilities: &abilities,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithPlayerID sets the owning player
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithCampaignID sets the campaign
func (b *CharacterBuilder) WithCampaignID(campaignID string) *CharacterBuilder {
	b.character.CampaignID = campaignID
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int32) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithExperience sets experience points
func (b *CharacterBuilder) WithExperience(xp int32) *CharacterBuilder {
	b.character.ExperiencePoints = xp
	return b
}

// WithHitDie sets the hit die size
func (b *CharacterBuilder) WithHitDie(size int32) *CharacterBuilder {
	b.character.HitDieSize = size
	return b
}

// WithAbility sets one base ability score
func (b *CharacterBuilder) WithAbility(ability dnd5e.Ability, score int32) *CharacterBuilder {
	if b.character.BaseAbilities == nil {
		abilities := dnd5e.DefaultAbilityScores()
		b.character.BaseAbilities = &abilities
	}
	b.character.BaseAbilities.Set(ability, score)
	return b
}

// WithAbilities sets all base ability scores
func (b *CharacterBuilder) WithAbilities(str, dex, con, intel, wis, cha int32) *CharacterBuilder {
	b.character.BaseAbilities = &dnd5e.AbilityScores{
		Strength:     str,
		Dexterity:    dex,
		Constitution: con,
		Intelligence: intel,
		Wisdom:       wis,
		Charisma:     cha,
	}
	return b
}

// WithoutAbilities clears the base ability scores
func (b *CharacterBuilder) WithoutAbilities() *CharacterBuilder {
	b.character.BaseAbilities = nil
	return b
}

// WithRacialBonus adds a racial ability bonus
func (b *CharacterBuilder) WithRacialBonus(ability dnd5e.Ability, bonus int32) *CharacterBuilder {
	if b.character.RacialBonuses == nil {
		b.character.RacialBonuses = make(map[dnd5e.Ability]int32)
	}
	b.character.RacialBonuses[ability] = bonus
	return b
}

// WithSpeed sets the base walking speed
func (b *CharacterBuilder) WithSpeed(speed int32) *CharacterBuilder {
	b.character.Speed = &speed
	return b
}

// WithSkillProficiency adds skill proficiencies
func (b *CharacterBuilder) WithSkillProficiency(skills ...dnd5e.Skill) *CharacterBuilder {
	b.character.SkillProficiencies = append(b.character.SkillProficiencies, skills...)
	return b
}

// WithSkillExpertise adds skill expertise
func (b *CharacterBuilder) WithSkillExpertise(skills ...dnd5e.Skill) *CharacterBuilder {
	b.character.SkillExpertise = append(b.character.SkillExpertise, skills...)
	return b
}

// WithSavingThrowProficiency adds saving throw proficiencies
func (b *CharacterBuilder) WithSavingThrowProficiency(abilities ...dnd5e.Ability) *CharacterBuilder {
	b.character.SavingThrowProficiencies = append(b.character.SavingThrowProficiencies, abilities...)
	return b
}

// WithJackOfAllTrades grants half proficiency to untrained skills
func (b *CharacterBuilder) WithJackOfAllTrades() *CharacterBuilder {
	b.character.JackOfAllTrades = true
	return b
}

// WithSpellcasting makes the character a caster using ability
func (b *CharacterBuilder) WithSpellcasting(ability dnd5e.Ability) *CharacterBuilder {
	b.character.Spellcasting = &dnd5e.Spellcasting{Ability: ability}
	return b
}

// WithProperty appends a property
func (b *CharacterBuilder) WithProperty(p dnd5e.Property) *CharacterBuilder {
	b.character.Properties = append(b.character.Properties, p)
	return b
}

// WithHP sets current and maximum hit points
func (b *CharacterBuilder) WithHP(current, maxHP int32) *CharacterBuilder {
	b.character.CurrentHP = current
	b.character.MaxHP = maxHP
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character
}
