package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type AggregateTestSuite struct {
	suite.Suite
}

func (s *AggregateTestSuite) TestNilCharacter() {
	stats := engine.CalculateAllStats(nil)

	s.Equal(int32(1), stats.Level)
	s.Equal(int32(2), stats.ProficiencyBonus)
	s.Equal(dnd5e.DefaultAbilityScores(), stats.Abilities)
	s.Equal(int32(10), stats.ArmorClass)
	s.Equal(int32(30), stats.Speed)
	s.Equal(int32(10), stats.PassivePerception)
	s.Equal(int32(150), stats.CarryingCapacity)
	s.Nil(stats.SpellSaveDC)
	s.Nil(stats.SpellAttackBonus)
}

func (s *AggregateTestSuite) TestCarryingScenario() {
	char := builders.NewCharacterBuilder().
		WithAbility(dnd5e.AbilityStrength, 14).
		WithProperty(builders.Gear("rope", 10, 2)).
		WithProperty(builders.Gear("tent", 10, 2)).
		WithProperty(builders.Gear("rations", 10, 2)).
		Build()

	stats := engine.CalculateAllStats(char)

	s.Equal(int32(210), stats.CarryingCapacity)
	s.Equal(60.0, stats.CurrentLoad)
	s.False(stats.Encumbered)
}

func (s *AggregateTestSuite) TestEncumbered() {
	anvil := builders.Gear("anvil", 200, 1)
	anvil.Quantity = nil
	spent := builders.Gear("oil", 50, 0)
	stowed := builders.Gear("stowed", 500, 1)
	stowed.Active = false

	char := builders.NewCharacterBuilder().
		WithAbility(dnd5e.AbilityStrength, 8).
		WithProperty(anvil).
		WithProperty(spent).
		WithProperty(stowed).
		Build()

	stats := engine.CalculateAllStats(char)

	s.Equal(200.0, stats.CurrentLoad, "unset quantity counts as one, zero quantity and inactive items add nothing")
	s.True(stats.Encumbered)
}

func (s *AggregateTestSuite) TestSpellcasting() {
	noCaster := engine.CalculateAllStats(builders.NewCharacterBuilder().Build())
	s.Nil(noCaster.SpellSaveDC)
	s.Nil(noCaster.SpellAttackBonus)

	wizard := builders.NewCharacterBuilder().
		WithLevel(5).
		WithAbility(dnd5e.AbilityIntelligence, 16).
		WithSpellcasting(dnd5e.AbilityIntelligence).
		Build()

	stats := engine.CalculateAllStats(wizard)
	s.Require().NotNil(stats.SpellSaveDC)
	s.Require().NotNil(stats.SpellAttackBonus)
	s.Equal(int32(14), *stats.SpellSaveDC)
	s.Equal(int32(6), *stats.SpellAttackBonus)
}

func (s *AggregateTestSuite) TestAttacks() {
	bow := builders.Weapon("longbow")
	bow.WeaponRange = dnd5e.WeaponRangeRanged
	sheathed := builders.Weapon("dagger", dnd5e.WeaponPropertyFinesse)
	sheathed.Equipped = false

	char := builders.NewCharacterBuilder().
		WithAbilities(16, 14, 10, 10, 10, 10).
		WithProperty(builders.Weapon("greataxe")).
		WithProperty(bow).
		WithProperty(sheathed).
		Build()

	stats := engine.CalculateAllStats(char)

	s.Require().Len(stats.Attacks, 2)
	s.Equal(dnd5e.WeaponAttack{
		ItemID: "greataxe", Name: "greataxe", Ability: dnd5e.AbilityStrength, AttackBonus: 5, DamageBonus: 3,
	}, stats.Attacks[0])
	s.Equal(dnd5e.WeaponAttack{
		ItemID: "longbow", Name: "longbow", Ability: dnd5e.AbilityDexterity, AttackBonus: 4, DamageBonus: 2,
	}, stats.Attacks[1])
}

func (s *AggregateTestSuite) TestExperienceToNextLevel() {
	char := builders.NewCharacterBuilder().WithLevel(2).WithExperience(450).Build()
	s.Equal(int32(450), engine.CalculateAllStats(char).ExperienceToNextLevel)
}

func (s *AggregateTestSuite) TestHighestArmorOption() {
	char := builders.NewCharacterBuilder().
		WithProperty(builders.Armor("padded", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(builders.Armor("splint", dnd5e.ArmorCategoryHeavy, 17)).
		Build()

	s.Equal(int32(11), engine.CalculateAllStats(char).ArmorClass)
	s.Equal(int32(17), engine.CalculateAllStatsWithOptions(char, engine.Options{
		ArmorSelection: engine.ArmorSelectionHighest,
	}).ArmorClass)
	s.Equal(int32(11), engine.CalculateAllStatsWithOptions(char, engine.Options{
		ArmorSelection: "bogus",
	}).ArmorClass)
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

var modifierTargets = []string{
	string(dnd5e.AbilityStrength),
	string(dnd5e.AbilityDexterity),
	string(dnd5e.AbilityWisdom),
	string(dnd5e.SkillStealth),
	dnd5e.AbilityConstitution.SaveTarget(),
	dnd5e.TargetArmorClass,
	dnd5e.TargetInitiative,
	dnd5e.TargetSpeed,
	dnd5e.TargetPerception,
}

func drawCharacter(t *rapid.T) *dnd5e.Character {
	b := builders.NewCharacterBuilder().
		WithLevel(rapid.Int32Range(1, 20).Draw(t, "level"))
	for _, ability := range dnd5e.Abilities {
		b.WithAbility(ability, rapid.Int32Range(3, 20).Draw(t, string(ability)))
	}
	if rapid.Bool().Draw(t, "armored") {
		b.WithProperty(builders.Armor("armor", dnd5e.ArmorCategoryMedium, rapid.Int32Range(12, 15).Draw(t, "baseAC")))
	}
	if rapid.Bool().Draw(t, "proficient") {
		b.WithSkillProficiency(dnd5e.SkillPerception)
	}
	return b.Build()
}

func drawModifiers(t *rapid.T) []dnd5e.Modifier {
	return rapid.SliceOfN(rapid.Custom(func(t *rapid.T) dnd5e.Modifier {
		return builders.Bonus(
			rapid.SampledFrom(modifierTargets).Draw(t, "target"),
			rapid.Int32Range(-3, 3).Draw(t, "value"),
		)
	}), 1, 4).Draw(t, "mods")
}

func TestCalculateAllStats_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		char := drawCharacter(t)
		char.Properties = append(char.Properties, builders.Effect("effect", drawModifiers(t)...))

		snapshot, err := char.Clone()
		require.NoError(t, err)

		first := engine.CalculateAllStats(char)
		second := engine.CalculateAllStats(char)

		assert.Equal(t, first, second)
		assert.Equal(t, snapshot, char, "calculation must not mutate the character")
	})
}

func TestCalculateAllStats_UnequippedItemHasNoEffect(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		char := drawCharacter(t)
		baseline := engine.CalculateAllStats(char)

		trinket := &dnd5e.Item{
			PropertyBase: dnd5e.PropertyBase{ID: "trinket", Active: true},
			Category:     dnd5e.ItemCategoryGear,
			Modifiers:    drawModifiers(t),
		}
		char.Properties = append(char.Properties, trinket)

		assert.Equal(t, baseline, engine.CalculateAllStats(char))

		trinket.Equipped = true
		equipped := engine.CalculateAllStats(char)
		assert.Equal(t, baseline.Speed+sumTarget(trinket.Modifiers, dnd5e.TargetSpeed), equipped.Speed)
		assert.Equal(t, baseline.CarryingCapacity == equipped.CarryingCapacity,
			sumTarget(trinket.Modifiers, string(dnd5e.AbilityStrength)) == 0)
	})
}

func TestCalculateAllStats_UnattunedItemHasNoEffect(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		char := drawCharacter(t)
		baseline := engine.CalculateAllStats(char)

		amulet := &dnd5e.Item{
			PropertyBase:       dnd5e.PropertyBase{ID: "amulet", Active: true},
			Equipped:           true,
			RequiresAttunement: true,
			Modifiers:          drawModifiers(t),
		}
		char.Properties = append(char.Properties, amulet)

		assert.Equal(t, baseline, engine.CalculateAllStats(char))

		amulet.Attuned = true
		attuned := engine.CalculateAllStats(char)
		if sumTarget(amulet.Modifiers, string(dnd5e.AbilityDexterity)) == 0 {
			delta := sumTarget(amulet.Modifiers, dnd5e.TargetInitiative)
			assert.Equal(t, baseline.Initiative+delta, attuned.Initiative)
		}
	})
}

func sumTarget(mods []dnd5e.Modifier, target string) int32 {
	return engine.ApplyModifiers(0, engine.FilterModifiersByTarget(mods, target))
}
