package character_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	charactersvc "github.com/KirkDiggler/rpg-sheet/internal/services/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestRollHitPoints() {
	char := builders.NewCharacterBuilder().
		WithLevel(3).
		WithHitDie(10).
		WithAbility(dnd5e.AbilityConstitution, 14).
		Build()
	s.roller.rolls = []int{4, 7}

	s.expectGet(char)
	s.useRealEngine()
	s.mockCharRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal(int32(27), in.Character.MaxHP)
			s.Equal(int32(27), in.Character.CurrentHP)
			return &characterrepo.UpdateOutput{Character: in.Character}, nil
		})

	output, err := s.orchestrator.RollHitPoints(s.ctx, &charactersvc.RollHitPointsInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal([]int32{4, 7}, output.Rolls)
	s.Equal(int32(27), output.MaxHP)
	s.Equal([]int{10, 10}, s.roller.sizes)
	s.Equal(int32(0), char.MaxHP, "loaded snapshot must not be modified")

	rolled := s.eventsOfType(character.EventHitPointsRolled)
	s.Require().Len(rolled, 1)
	maxHP, _ := rolled[0].Context().Get(character.EventKeyMaxHP)
	s.Equal(int32(27), maxHP)
}

func (s *OrchestratorTestSuite) TestRollHitPoints_FirstLevelNeedsNoRolls() {
	char := builders.NewCharacterBuilder().WithHitDie(12).WithHP(5, 20).Build()

	s.expectGet(char)
	s.useRealEngine()
	s.expectUpdateEcho()

	output, err := s.orchestrator.RollHitPoints(s.ctx, &charactersvc.RollHitPointsInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Empty(output.Rolls)
	s.Equal(int32(12), output.MaxHP)
	s.Equal(int32(5), output.Character.CurrentHP, "current HP below the new maximum is kept")
	s.Empty(s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRollHitPoints_FloorsAtOne() {
	char := builders.NewCharacterBuilder().
		WithLevel(3).
		WithHitDie(6).
		WithAbility(dnd5e.AbilityConstitution, 1).
		Build()
	s.roller.rolls = []int{1, 1}

	s.expectGet(char)
	s.useRealEngine()
	s.expectUpdateEcho()

	output, err := s.orchestrator.RollHitPoints(s.ctx, &charactersvc.RollHitPointsInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(int32(1), output.MaxHP)
}

func (s *OrchestratorTestSuite) TestRollHitPoints_InvalidHitDie() {
	char := builders.NewCharacterBuilder().WithHitDie(0).Build()
	s.expectGet(char)

	output, err := s.orchestrator.RollHitPoints(s.ctx, &charactersvc.RollHitPointsInput{CharacterID: char.ID})
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
}
