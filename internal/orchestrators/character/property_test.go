package character_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	charactersvc "github.com/KirkDiggler/rpg-sheet/internal/services/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) characterWithShield() *dnd5e.Character {
	shield := builders.Armor("shield", dnd5e.ArmorCategoryShield, 2)
	shield.Equipped = false
	return builders.NewCharacterBuilder().
		WithAbility(dnd5e.AbilityDexterity, 14).
		WithProperty(builders.Armor("leather", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(shield).
		Build()
}

func (s *OrchestratorTestSuite) TestSetPropertyState_EquipShield() {
	char := s.characterWithShield()

	s.expectGet(char)
	s.useRealEngine()
	s.mockStatsCache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&statsrepo.PutOutput{}, nil)
	s.mockCharRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			prop, ok := in.Character.FindProperty("shield")
			s.Require().True(ok)
			s.True(prop.(*dnd5e.Item).Equipped)
			return &characterrepo.UpdateOutput{Character: in.Character}, nil
		})

	output, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: char.ID,
		PropertyID:  "shield",
		Change:      charactersvc.PropertyChangeEquip,
	})
	s.Require().NoError(err)
	s.Equal(int32(15), output.Stats.ArmorClass)

	stored, _ := char.FindProperty("shield")
	s.False(stored.(*dnd5e.Item).Equipped, "loaded snapshot must not be modified")

	changed := s.eventsOfType(character.EventPropertyChanged)
	s.Require().Len(changed, 1)
	propertyID, _ := changed[0].Context().Get(character.EventKeyPropertyID)
	s.Equal("shield", propertyID)
}

func (s *OrchestratorTestSuite) TestSetPropertyState_PersistFailureReverts() {
	char := s.characterWithShield()

	s.expectGet(char)
	s.useRealEngine()
	s.mockStatsCache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&statsrepo.PutOutput{}, nil)
	s.mockCharRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("storage offline"))

	output, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: char.ID,
		PropertyID:  "shield",
		Change:      charactersvc.PropertyChangeEquip,
	})
	s.Nil(output)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Equal("shield", errors.GetMeta(err)["property_id"])

	reverted := s.eventsOfType(character.EventPropertyReverted)
	s.Require().Len(reverted, 1)
	source, ok := reverted[0].Source().(*character.CharacterEntity)
	s.Require().True(ok)
	prop, _ := source.Character().FindProperty("shield")
	s.False(prop.(*dnd5e.Item).Equipped, "inverse must restore the previous state")
	s.Empty(s.eventsOfType(character.EventPropertyChanged))
}

func (s *OrchestratorTestSuite) TestSetPropertyState_NoChangeSkipsSave() {
	char := s.characterWithShield()

	s.expectGet(char)
	s.useRealEngine()
	mocks.ExpectStatsCacheMiss(s.mockStatsCache, char.ID)

	output, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: char.ID,
		PropertyID:  "leather",
		Change:      charactersvc.PropertyChangeEquip,
	})
	s.Require().NoError(err)
	s.Equal(int32(13), output.Stats.ArmorClass)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestSetPropertyState_Attune() {
	ring := &dnd5e.Item{
		PropertyBase:       dnd5e.PropertyBase{ID: "ring", Active: true},
		Equipped:           true,
		RequiresAttunement: true,
		Modifiers:          []dnd5e.Modifier{builders.Bonus(dnd5e.TargetArmorClass, 1)},
	}
	char := builders.NewCharacterBuilder().WithProperty(ring).Build()

	s.expectGet(char)
	s.useRealEngine()
	s.mockStatsCache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&statsrepo.PutOutput{}, nil)
	s.expectUpdateEcho()

	output, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: char.ID,
		PropertyID:  "ring",
		Change:      charactersvc.PropertyChangeAttune,
	})
	s.Require().NoError(err)
	s.Equal(int32(11), output.Stats.ArmorClass)
}

func (s *OrchestratorTestSuite) TestSetPropertyState_Rejections() {
	rage := builders.Feature("rage", builders.Bonus("strength", 2))
	char := builders.NewCharacterBuilder().
		WithProperty(builders.Weapon("dagger", dnd5e.WeaponPropertyFinesse)).
		WithProperty(rage).
		Build()

	testCases := []struct {
		name       string
		propertyID string
		change     charactersvc.PropertyChange
		check      func(error) bool
	}{
		{"unknown property", "wand", charactersvc.PropertyChangeEquip, errors.IsNotFound},
		{"equip a feature", "rage", charactersvc.PropertyChangeEquip, errors.IsFailedPrecondition},
		{"attune without attunement", "dagger", charactersvc.PropertyChangeAttune, errors.IsFailedPrecondition},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectGet(char)

			output, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
				CharacterID: char.ID,
				PropertyID:  tc.propertyID,
				Change:      tc.change,
			})
			s.Nil(output)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestSetPropertyState_InvalidInput() {
	_, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: "char_1",
		PropertyID:  "shield",
		Change:      "wield",
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "change")

	_, err = s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		Change: charactersvc.PropertyChangeEquip,
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "characterID")
	s.Contains(err.Error(), "propertyID")
}

func (s *OrchestratorTestSuite) TestSetPropertyState_DeactivateEffect() {
	blessing := builders.Effect("blessing", builders.Bonus(dnd5e.TargetArmorClass, 2))
	char := builders.NewCharacterBuilder().WithProperty(blessing).Build()

	s.expectGet(char)
	s.useRealEngine()
	s.mockStatsCache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&statsrepo.PutOutput{}, nil)
	s.expectUpdateEcho()

	output, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: char.ID,
		PropertyID:  "blessing",
		Change:      charactersvc.PropertyChangeDeactivate,
	})
	s.Require().NoError(err)
	s.Equal(int32(10), output.Stats.ArmorClass)
	prop, _ := output.Character.FindProperty("blessing")
	s.False(prop.IsActive())
}
