package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type ModifiersTestSuite struct {
	suite.Suite
}

func (s *ModifiersTestSuite) TestApplyModifiers_IgnoresAdvantage() {
	mods := []dnd5e.Modifier{
		builders.Bonus(dnd5e.TargetArmorClass, 2),
		builders.Advantage(dnd5e.TargetArmorClass),
		builders.Bonus(dnd5e.TargetArmorClass, -1),
		builders.Disadvantage(dnd5e.TargetArmorClass),
	}

	s.Equal(int32(11), engine.ApplyModifiers(10, mods))
	s.Equal(int32(10), engine.ApplyModifiers(10, nil))
}

func (s *ModifiersTestSuite) TestApplyModifiers_EmptyTypeIsNumeric() {
	mods := []dnd5e.Modifier{{Target: dnd5e.TargetSpeed, Value: 10, Active: true}}
	s.Equal(int32(40), engine.ApplyModifiers(30, mods))
}

func (s *ModifiersTestSuite) TestFilterModifiersByTarget_PreservesOrder() {
	first := builders.Bonus(dnd5e.TargetSpeed, 10)
	second := builders.Bonus(dnd5e.TargetSpeed, -5)
	mods := []dnd5e.Modifier{first, builders.Bonus(dnd5e.TargetInitiative, 1), second}

	s.Equal([]dnd5e.Modifier{first, second}, engine.FilterModifiersByTarget(mods, dnd5e.TargetSpeed))
	s.Empty(engine.FilterModifiersByTarget(mods, "stealth"))
}

func (s *ModifiersTestSuite) TestCombineModifiers_StacksDuplicates() {
	ring := builders.Bonus(dnd5e.TargetArmorClass, 1)
	cloak := builders.Bonus(dnd5e.TargetArmorClass, 1)

	combined := engine.CombineModifiers([]dnd5e.Modifier{ring}, nil, []dnd5e.Modifier{cloak})

	s.Len(combined, 2)
	s.Equal(int32(12), engine.ApplyModifiers(10, combined))
}

func (s *ModifiersTestSuite) TestGetAllModifiers_MissingProperties() {
	s.NotNil(engine.GetAllModifiers(nil))
	s.Empty(engine.GetAllModifiers(nil))

	char := builders.NewCharacterBuilder().Build()
	mods := engine.GetAllModifiers(char)
	s.NotNil(mods)
	s.Empty(mods)
}

func (s *ModifiersTestSuite) TestGetAllModifiers_Gating() {
	unequipped := builders.Armor("ring-unequipped", "", 0)
	unequipped.Equipped = false
	unequipped.Modifiers = []dnd5e.Modifier{builders.Bonus(dnd5e.TargetArmorClass, 1)}

	unattuned := builders.Armor("cloak-unattuned", "", 0)
	unattuned.RequiresAttunement = true
	unattuned.Modifiers = []dnd5e.Modifier{builders.Bonus(dnd5e.TargetArmorClass, 2)}

	attuned := builders.Armor("cloak-attuned", "", 0)
	attuned.RequiresAttunement = true
	attuned.Attuned = true
	attuned.Modifiers = []dnd5e.Modifier{builders.Bonus(dnd5e.TargetArmorClass, 3)}

	inactiveEffect := builders.Effect("bless-ended", builders.Bonus("strengthSave", 4))
	inactiveEffect.Active = false

	switchedOff := builders.Bonus(dnd5e.TargetSpeed, 10)
	switchedOff.Active = false
	mixedEffect := builders.Effect("haste", builders.Bonus(dnd5e.TargetArmorClass, 2), switchedOff)

	feature := builders.Feature("alert", builders.Bonus(dnd5e.TargetInitiative, 5))
	bare := builders.Feature("darkvision")

	action := &dnd5e.Action{PropertyBase: dnd5e.PropertyBase{ID: "dash", Active: true}}

	char := builders.NewCharacterBuilder().
		WithProperty(unequipped).
		WithProperty(unattuned).
		WithProperty(attuned).
		WithProperty(inactiveEffect).
		WithProperty(mixedEffect).
		WithProperty(feature).
		WithProperty(bare).
		WithProperty(action).
		Build()

	s.Equal([]dnd5e.Modifier{
		builders.Bonus(dnd5e.TargetArmorClass, 3),
		builders.Bonus(dnd5e.TargetArmorClass, 2),
		builders.Bonus(dnd5e.TargetInitiative, 5),
	}, engine.GetAllModifiers(char))
}

func (s *ModifiersTestSuite) TestGetAllModifiers_SkipsNilProperty() {
	char := builders.NewCharacterBuilder().
		WithProperty(nil).
		WithProperty(builders.Effect("bless", builders.Bonus("wisdomSave", 1))).
		Build()

	s.Len(engine.GetAllModifiers(char), 1)
}

func (s *ModifiersTestSuite) TestGetAllModifiers_SkipsTypedNilProperty() {
	char := &dnd5e.Character{
		Level: 1,
		Properties: dnd5e.Properties{
			(*dnd5e.Item)(nil),
			(*dnd5e.Effect)(nil),
			builders.Effect("bless", builders.Bonus(dnd5e.TargetArmorClass, 1)),
		},
	}

	s.NotPanics(func() {
		s.Len(engine.GetAllModifiers(char), 1)
		stats := engine.CalculateAllStats(char)
		s.Equal(int32(11), stats.ArmorClass)
	})
}

func TestModifiersSuite(t *testing.T) {
	suite.Run(t, new(ModifiersTestSuite))
}
