package character

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// propertyFlag is the piece of property state a command flips
type propertyFlag int

const (
	flagEquipped propertyFlag = iota
	flagAttuned
	flagActive
)

// propertyCommand sets one flag on one property. Apply remembers the value
// it replaced so Inverse can put it back.
type propertyCommand struct {
	propertyID string
	flag       propertyFlag
	value      bool

	applied  bool
	previous bool
}

func newPropertyCommand(propertyID string, change character.PropertyChange) (*propertyCommand, error) {
	cmd := &propertyCommand{propertyID: propertyID}

	switch change {
	case character.PropertyChangeEquip:
		cmd.flag, cmd.value = flagEquipped, true
	case character.PropertyChangeUnequip:
		cmd.flag, cmd.value = flagEquipped, false
	case character.PropertyChangeAttune:
		cmd.flag, cmd.value = flagAttuned, true
	case character.PropertyChangeUnattune:
		cmd.flag, cmd.value = flagAttuned, false
	case character.PropertyChangeActivate:
		cmd.flag, cmd.value = flagActive, true
	case character.PropertyChangeDeactivate:
		cmd.flag, cmd.value = flagActive, false
	default:
		return nil, errors.InvalidArgumentf("unknown property change %q", change)
	}

	return cmd, nil
}

// Apply sets the flag on the character's property
func (c *propertyCommand) Apply(char *dnd5e.Character) error {
	prop, ok := char.FindProperty(c.propertyID)
	if !ok {
		return errors.NotFoundf("property %s not found", c.propertyID)
	}

	if c.flag == flagActive {
		c.previous = prop.IsActive()
		prop.SetActive(c.value)
		c.applied = true
		return nil
	}

	item, ok := prop.(*dnd5e.Item)
	if !ok {
		return errors.FailedPreconditionf("property %s is a %s, not an item", c.propertyID, prop.Kind())
	}

	switch c.flag {
	case flagEquipped:
		c.previous = item.Equipped
		item.Equipped = c.value
	case flagAttuned:
		if c.value && !item.RequiresAttunement {
			return errors.FailedPreconditionf("item %s does not require attunement", c.propertyID)
		}
		c.previous = item.Attuned
		item.Attuned = c.value
	}
	c.applied = true
	return nil
}

// Changed reports whether Apply altered the property
func (c *propertyCommand) Changed() bool {
	return c.applied && c.previous != c.value
}

// Inverse returns the command that restores the state Apply replaced
func (c *propertyCommand) Inverse() *propertyCommand {
	return &propertyCommand{
		propertyID: c.propertyID,
		flag:       c.flag,
		value:      c.previous,
	}
}

// SetPropertyState equips, attunes or activates a property and persists the
// result. If the save fails the change is undone on the returned snapshot
// and a revert event is published.
func (o *Orchestrator) SetPropertyState(
	ctx context.Context,
	input *character.SetPropertyStateInput,
) (*character.SetPropertyStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("propertyID", input.PropertyID, vb)
	if !input.Change.IsValid() {
		vb.InvalidField("change", "must be one of equip, unequip, attune, unattune, activate, deactivate")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "character.SetPropertyState", trace.WithAttributes(
		attribute.String("character.id", input.CharacterID),
		attribute.String("property.id", input.PropertyID),
		attribute.String("property.change", string(input.Change)),
	))
	defer span.End()

	cmd, err := newPropertyCommand(input.PropertyID, input.Change)
	if err != nil {
		return nil, err
	}

	stored, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	char, err := stored.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy character")
	}

	if err := cmd.Apply(char); err != nil {
		return nil, errors.Wrap(err, "failed to apply property change").
			WithMeta("character_id", input.CharacterID).
			WithMeta("property_id", input.PropertyID)
	}

	if !cmd.Changed() {
		calc, _, err := o.calculate(ctx, char, false)
		if err != nil {
			recordError(span, err)
			return nil, err
		}
		return &character.SetPropertyStateOutput{Character: char, Stats: calc.stats, Warnings: calc.warnings}, nil
	}

	calc, _, err := o.calculate(ctx, char, true)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		if undoErr := cmd.Inverse().Apply(char); undoErr != nil {
			slog.ErrorContext(ctx, "failed to undo property change",
				"character_id", char.ID,
				"property_id", input.PropertyID,
				"error", undoErr.Error())
		}
		o.publish(ctx, EventPropertyReverted, char, map[string]any{
			EventKeyPropertyID: input.PropertyID,
			EventKeyChange:     string(input.Change),
			EventKeyError:      err.Error(),
		})
		recordError(span, err)
		return nil, errors.Wrap(err, "failed to save property change").
			WithMeta("character_id", input.CharacterID).
			WithMeta("property_id", input.PropertyID)
	}

	o.publish(ctx, EventPropertyChanged, updated.Character, map[string]any{
		EventKeyPropertyID: input.PropertyID,
		EventKeyChange:     string(input.Change),
		EventKeyArmorClass: calc.stats.ArmorClass,
	})

	return &character.SetPropertyStateOutput{
		Character: updated.Character,
		Stats:     calc.stats,
		Warnings:  calc.warnings,
	}, nil
}
