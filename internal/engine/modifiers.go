package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// ApplyModifiers adds the value of every numeric modifier to base.
// Advantage and disadvantage modifiers contribute nothing here.
func ApplyModifiers(base int32, mods []dnd5e.Modifier) int32 {
	total := base
	for _, m := range mods {
		if m.Type.IsNumeric() {
			total += m.Value
		}
	}
	return total
}

// FilterModifiersByTarget returns the modifiers aimed at target, in order
func FilterModifiersByTarget(mods []dnd5e.Modifier, target string) []dnd5e.Modifier {
	var out []dnd5e.Modifier
	for _, m := range mods {
		if m.Target == target {
			out = append(out, m)
		}
	}
	return out
}

// CombineModifiers concatenates modifier lists. Nothing is deduplicated:
// two +1 armorClass modifiers stack to +2.
func CombineModifiers(lists ...[]dnd5e.Modifier) []dnd5e.Modifier {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	out := make([]dnd5e.Modifier, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// GetAllModifiers collects every live modifier on the character.
//
// A modifier is live when its property is eligible and the modifier itself
// is active. Eligibility by variant:
//   - item: active, equipped, and attuned if it requires attunement
//   - effect: active
//   - feature: active (modifiers are optional)
//   - anything else: never
func GetAllModifiers(character *dnd5e.Character) []dnd5e.Modifier {
	if character == nil || len(character.Properties) == 0 {
		return []dnd5e.Modifier{}
	}

	var collected []dnd5e.Modifier
	for _, p := range character.Properties {
		if dnd5e.IsNilProperty(p) || !p.IsActive() {
			continue
		}

		switch prop := p.(type) {
		case *dnd5e.Item:
			if !itemContributes(prop) {
				continue
			}
			collected = append(collected, prop.Modifiers...)
		case *dnd5e.Effect:
			collected = append(collected, prop.Modifiers...)
		case *dnd5e.Feature:
			collected = append(collected, prop.Modifiers...)
		}
	}

	live := make([]dnd5e.Modifier, 0, len(collected))
	for _, m := range collected {
		if m.Active {
			live = append(live, m)
		}
	}
	return live
}

// itemContributes applies the equip and attunement gates. The caller has
// already checked that the item is active.
func itemContributes(item *dnd5e.Item) bool {
	if !item.Equipped {
		return false
	}
	if item.RequiresAttunement && !item.Attuned {
		return false
	}
	return true
}

// advantageState summarises advantage/disadvantage modifiers on one target
type advantageState int

const (
	advantageNone advantageState = iota
	advantageOnly
	disadvantageOnly
)

func resolveAdvantage(mods []dnd5e.Modifier) advantageState {
	var adv, dis bool
	for _, m := range mods {
		switch m.Type {
		case dnd5e.ModifierTypeAdvantage:
			adv = true
		case dnd5e.ModifierTypeDisadvantage:
			dis = true
		}
	}
	switch {
	case adv && !dis:
		return advantageOnly
	case dis && !adv:
		return disadvantageOnly
	default:
		return advantageNone
	}
}
