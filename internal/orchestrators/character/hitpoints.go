package character

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// RollHitPoints rolls maximum hit points: the full hit die at first level,
// then one roll of the die per later level, each plus the CON modifier.
// The total never drops below 1.
func (o *Orchestrator) RollHitPoints(
	ctx context.Context,
	input *character.RollHitPointsInput,
) (*character.RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "character.RollHitPoints",
		trace.WithAttributes(attribute.String("character.id", input.CharacterID)))
	defer span.End()

	stored, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	if !engine.IsValidHitDie(stored.HitDieSize) {
		return nil, errors.FailedPreconditionf("character %s has no valid hit die (got d%d)",
			stored.ID, stored.HitDieSize)
	}

	calc, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{Character: stored})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate stats")
	}
	conMod := calc.Stats.AbilityModifiers[dnd5e.AbilityConstitution]

	rolls := make([]int32, 0)
	total := stored.HitDieSize + conMod
	for level := int32(2); level <= calc.Stats.Level; level++ {
		roll, err := o.diceRoller.Roll(int(stored.HitDieSize))
		if err != nil {
			recordError(span, err)
			return nil, errors.Wrap(err, "failed to roll hit die")
		}
		rolls = append(rolls, int32(roll))
		total += int32(roll) + conMod
	}
	if total < 1 {
		total = 1
	}

	char, err := stored.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy character")
	}
	char.MaxHP = total
	if char.CurrentHP <= 0 || char.CurrentHP > total {
		char.CurrentHP = total
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		recordError(span, err)
		return nil, errors.Wrap(err, "failed to save hit points").
			WithMeta("character_id", char.ID)
	}

	o.publish(ctx, EventHitPointsRolled, updated.Character, map[string]any{
		EventKeyRolls: rolls,
		EventKeyMaxHP: total,
	})

	return &character.RollHitPointsOutput{
		Character: updated.Character,
		Rolls:     rolls,
		MaxHP:     total,
	}, nil
}
