package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine engine.Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *EngineTestSuite) TestNew_InvalidArmorSelection() {
	eng, err := engine.New(&engine.Config{ArmorSelection: "best"})
	s.Error(err)
	s.Nil(eng)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestNew_NilConfig() {
	eng, err := engine.New(nil)
	s.Error(err)
	s.Nil(eng)
}

func (s *EngineTestSuite) TestCalculateCharacterStats_RequiresCharacter() {
	output, err := s.engine.CalculateCharacterStats(s.ctx, &engine.CalculateCharacterStatsInput{})
	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))

	output, err = s.engine.CalculateCharacterStats(s.ctx, nil)
	s.Error(err)
	s.Nil(output)
}

func (s *EngineTestSuite) TestCalculateCharacterStats_ReportsDefaults() {
	char := &dnd5e.Character{ID: "char-bare"}

	output, err := s.engine.CalculateCharacterStats(s.ctx, &engine.CalculateCharacterStatsInput{Character: char})
	s.Require().NoError(err)

	s.Equal([]string{
		engine.FieldBaseAbilities,
		engine.FieldLevel,
		engine.FieldSpeed,
		engine.FieldProperties,
	}, output.Defaulted)
	s.Equal(engine.CalculateAllStats(char), output.Stats)
	s.Empty(output.Warnings)
}

func (s *EngineTestSuite) TestCalculateCharacterStats_NothingDefaulted() {
	char := builders.NewCharacterBuilder().
		WithSpeed(30).
		WithProperty(builders.Gear("rope", 10, 1)).
		Build()

	output, err := s.engine.CalculateCharacterStats(s.ctx, &engine.CalculateCharacterStatsInput{Character: char})
	s.Require().NoError(err)
	s.Empty(output.Defaulted)
}

func (s *EngineTestSuite) TestCalculateCharacterStats_MultipleArmorWarning() {
	char := builders.NewCharacterBuilder().
		WithProperty(builders.Armor("padded", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(builders.Armor("plate", dnd5e.ArmorCategoryHeavy, 18)).
		Build()

	output, err := s.engine.CalculateCharacterStats(s.ctx, &engine.CalculateCharacterStatsInput{Character: char})
	s.Require().NoError(err)
	s.Require().Len(output.Warnings, 1)
	s.Equal(engine.WarningMultipleBodyArmor, output.Warnings[0].Code)
	s.Equal(int32(11), output.Stats.ArmorClass)
}

func (s *EngineTestSuite) TestCalculateCharacterStats_HighestArmorConfig() {
	eng, err := engine.New(&engine.Config{ArmorSelection: engine.ArmorSelectionHighest})
	s.Require().NoError(err)

	char := builders.NewCharacterBuilder().
		WithProperty(builders.Armor("padded", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(builders.Armor("plate", dnd5e.ArmorCategoryHeavy, 18)).
		Build()

	output, err := eng.CalculateCharacterStats(s.ctx, &engine.CalculateCharacterStatsInput{Character: char})
	s.Require().NoError(err)
	s.Equal(int32(18), output.Stats.ArmorClass)
}

func (s *EngineTestSuite) TestValidateCharacter_Valid() {
	char := builders.NewCharacterBuilder().
		WithAbilities(15, 14, 13, 12, 10, 8).
		WithSkillProficiency(dnd5e.SkillStealth).
		WithProperty(builders.Armor("leather", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(builders.Armor("shield", dnd5e.ArmorCategoryShield, 2)).
		Build()

	output, err := s.engine.ValidateCharacter(s.ctx, &engine.ValidateCharacterInput{Character: char})
	s.Require().NoError(err)
	s.Empty(output.Warnings)
}

func (s *EngineTestSuite) TestValidateCharacter_Invalid() {
	effect := builders.Effect("curse", dnd5e.Modifier{Type: dnd5e.ModifierTypeBonus, Value: -1, Active: true})

	char := builders.NewCharacterBuilder().
		WithLevel(21).
		WithHitDie(7).
		WithAbility(dnd5e.AbilityStrength, 31).
		WithSkillProficiency("cooking").
		WithSavingThrowProficiency("luck").
		WithSpellcasting("faith").
		WithProperty(builders.Armor("padded", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(builders.Armor("plate", dnd5e.ArmorCategoryHeavy, 18)).
		WithProperty(builders.Gear("plate", 1, 1)).
		WithProperty(effect).
		Build()

	output, err := s.engine.ValidateCharacter(s.ctx, &engine.ValidateCharacterInput{Character: char})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, engine.FieldLevel)
	s.Contains(fields, "hitDieSize")
	s.Contains(fields, "baseAbilities.strength")
	s.Contains(fields, "skillProficiencies")
	s.Contains(fields, "savingThrowProficiencies")
	s.Contains(fields, "spellcasting.ability")
	s.Contains(fields, "properties[2].id")
	s.Contains(fields, "properties[3].modifiers[0].target")
	s.Contains(fields, engine.FieldProperties)
}

func (s *EngineTestSuite) TestValidateCharacter_MissingAbilities() {
	char := builders.NewCharacterBuilder().WithoutAbilities().Build()

	_, err := s.engine.ValidateCharacter(s.ctx, &engine.ValidateCharacterInput{Character: char})
	s.Require().Error(err)
	s.Contains(err.Error(), "baseAbilities: is required")
}

func (s *EngineTestSuite) TestValidateCharacter_Warnings() {
	char := builders.NewCharacterBuilder().
		WithLevel(3).
		WithExperience(0).
		WithSkillExpertise(dnd5e.SkillArcana).
		Build()

	output, err := s.engine.ValidateCharacter(s.ctx, &engine.ValidateCharacterInput{Character: char})
	s.Require().NoError(err)
	s.Require().Len(output.Warnings, 2)
	s.Equal(engine.WarningLevelMismatch, output.Warnings[0].Code)
	s.Equal("skillExpertise", output.Warnings[1].Field)
}

func (s *EngineTestSuite) TestUtilityMethods() {
	s.Equal(int32(-1), s.engine.CalculateAbilityModifier(9))
	s.Equal(int32(3), s.engine.CalculateProficiencyBonus(5))
	s.Equal(int32(31), s.engine.CalculateMaxHP(8, 2, 4, true))
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
