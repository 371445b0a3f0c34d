package dnd5e

import "encoding/json"

// ModifierType distinguishes numeric modifiers from advantage effects
type ModifierType string

// Modifier types
const (
	ModifierTypeBonus        ModifierType = "bonus"
	ModifierTypeAdvantage    ModifierType = "advantage"
	ModifierTypeDisadvantage ModifierType = "disadvantage"
)

// IsNumeric reports whether the modifier contributes its value to a total
func (t ModifierType) IsNumeric() bool {
	return t != ModifierTypeAdvantage && t != ModifierTypeDisadvantage
}

// Modifier is a single effect on one target, e.g. +1 to armorClass.
// Negative values are penalties.
type Modifier struct {
	Target string       `json:"target"`
	Type   ModifierType `json:"type"`
	Value  int32        `json:"value,omitempty"`
	Active bool         `json:"active"`
	Source string       `json:"source,omitempty"`
}

// UnmarshalJSON decodes a modifier, treating a missing "active" as true
func (m *Modifier) UnmarshalJSON(data []byte) error {
	type alias Modifier
	aux := struct {
		*alias
		Active *bool `json:"active"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Active = aux.Active == nil || *aux.Active
	return nil
}
