package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type SkillsTestSuite struct {
	suite.Suite
}

func (s *SkillsTestSuite) TestStealth_ProficiencyThenExpertise() {
	b := builders.NewCharacterBuilder().
		WithLevel(5).
		WithAbility(dnd5e.AbilityDexterity, 14).
		WithSkillProficiency(dnd5e.SkillStealth)

	s.Equal(int32(5), engine.CalculateSkillModifier(b.Build(), dnd5e.SkillStealth))

	char := b.WithSkillExpertise(dnd5e.SkillStealth).Build()
	s.Equal(int32(8), engine.CalculateSkillModifier(char, dnd5e.SkillStealth))
}

func (s *SkillsTestSuite) TestExpertiseWithoutProficiencyStillDoubles() {
	char := builders.NewCharacterBuilder().
		WithLevel(5).
		WithSkillExpertise(dnd5e.SkillArcana).
		Build()

	s.Equal(int32(6), engine.CalculateSkillModifier(char, dnd5e.SkillArcana))
}

func (s *SkillsTestSuite) TestJackOfAllTrades() {
	char := builders.NewCharacterBuilder().
		WithLevel(5).
		WithJackOfAllTrades().
		WithSkillProficiency(dnd5e.SkillPerformance).
		Build()

	s.Equal(engine.ProficiencyHalf, engine.SkillProficiencyLevel(char, dnd5e.SkillHistory))
	s.Equal(int32(1), engine.CalculateSkillModifier(char, dnd5e.SkillHistory))
	s.Equal(int32(3), engine.CalculateSkillModifier(char, dnd5e.SkillPerformance))
}

func (s *SkillsTestSuite) TestSkillModifiersTargetExactKey() {
	char := builders.NewCharacterBuilder().
		WithProperty(builders.Effect("guidance", builders.Bonus(string(dnd5e.SkillSleightOfHand), 2))).
		Build()

	all := engine.CalculateSkillModifiers(char)
	s.Len(all, len(engine.Skills))
	s.Equal(int32(2), all[dnd5e.SkillSleightOfHand])
	s.Equal(int32(0), all[dnd5e.SkillAcrobatics])
}

func (s *SkillsTestSuite) TestSavingThrows() {
	char := builders.NewCharacterBuilder().
		WithAbility(dnd5e.AbilityDexterity, 14).
		WithSavingThrowProficiency(dnd5e.AbilityDexterity).
		WithProperty(builders.Effect("bless", builders.Bonus(dnd5e.AbilityDexterity.SaveTarget(), 1))).
		Build()

	s.Equal(int32(5), engine.CalculateSavingThrow(char, dnd5e.AbilityDexterity))
	s.Equal(int32(0), engine.CalculateSavingThrow(char, dnd5e.AbilityWisdom))
}

func (s *SkillsTestSuite) TestPassivePerception() {
	tests := []struct {
		name     string
		mods     []dnd5e.Modifier
		expected int32
	}{
		{name: "no modifiers", expected: 10},
		{name: "advantage", mods: []dnd5e.Modifier{builders.Advantage(dnd5e.TargetPerception)}, expected: 15},
		{name: "disadvantage", mods: []dnd5e.Modifier{builders.Disadvantage(dnd5e.TargetPerception)}, expected: 5},
		{
			name: "advantage and disadvantage cancel",
			mods: []dnd5e.Modifier{
				builders.Advantage(dnd5e.TargetPerception),
				builders.Disadvantage(dnd5e.TargetPerception),
			},
			expected: 10,
		},
		{name: "advantage elsewhere", mods: []dnd5e.Modifier{builders.Advantage(string(dnd5e.SkillStealth))}, expected: 10},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			char := builders.NewCharacterBuilder().
				WithProperty(builders.Effect("effect", tt.mods...)).
				Build()
			s.Equal(tt.expected, engine.CalculatePassivePerception(char))
		})
	}
}

func (s *SkillsTestSuite) TestAbilityScores_RacialThenModifiers() {
	char := builders.NewCharacterBuilder().
		WithAbility(dnd5e.AbilityStrength, 15).
		WithRacialBonus(dnd5e.AbilityStrength, 2).
		WithProperty(builders.Feature("belt", builders.Bonus(string(dnd5e.AbilityStrength), 1))).
		Build()

	scores := engine.CalculateAbilityScores(char)
	s.Equal(int32(18), scores.Strength)
	s.Equal(int32(10), scores.Wisdom)
	s.Equal(int32(4), engine.CalculateAbilityModifiers(scores)[dnd5e.AbilityStrength])
}

func (s *SkillsTestSuite) TestAbilityScores_DefaultWhenMissing() {
	char := builders.NewCharacterBuilder().WithoutAbilities().Build()
	s.Equal(dnd5e.DefaultAbilityScores(), engine.CalculateAbilityScores(char))
}

func TestSkillsSuite(t *testing.T) {
	suite.Run(t, new(SkillsTestSuite))
}
