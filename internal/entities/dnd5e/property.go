package dnd5e

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PropertyKind is the discriminant of a character property
type PropertyKind string

// Property kinds
const (
	PropertyKindItem          PropertyKind = "item"
	PropertyKindEffect        PropertyKind = "effect"
	PropertyKindFeature       PropertyKind = "feature"
	PropertyKindAction        PropertyKind = "action"
	PropertyKindClassResource PropertyKind = "classResource"
	PropertyKindAlternateForm PropertyKind = "alternateForm"
)

// Property is anything attached to a character: items, effects, features,
// actions, class resources and alternate forms
type Property interface {
	Kind() PropertyKind
	GetID() string
	IsActive() bool
	SetActive(active bool)
}

// PropertyBase carries the fields every property variant shares
type PropertyBase struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// GetID returns the property ID
func (p *PropertyBase) GetID() string { return p.ID }

// IsActive reports whether the property is switched on
func (p *PropertyBase) IsActive() bool { return p.Active }

// SetActive switches the property on or off
func (p *PropertyBase) SetActive(active bool) { p.Active = active }

// Item is a piece of equipment. Its modifiers only count while it is
// active, equipped and, when required, attuned.
type Item struct {
	PropertyBase
	Category           string        `json:"category,omitempty"`
	Equipped           bool          `json:"equipped"`
	RequiresAttunement bool          `json:"requiresAttunement,omitempty"`
	Attuned            bool          `json:"attuned,omitempty"`
	ArmorCategory      ArmorCategory `json:"armorCategory,omitempty"`
	BaseAC             int32         `json:"baseAC,omitempty"`
	Weight             float64       `json:"weight,omitempty"`
	Quantity           *int32        `json:"quantity,omitempty"`
	WeaponRange        string        `json:"weaponRange,omitempty"`
	WeaponProperties   []string      `json:"weaponProperties,omitempty"`
	Proficient         bool          `json:"proficient,omitempty"`
	Modifiers          []Modifier    `json:"modifiers,omitempty"`
}

// Kind implements Property
func (*Item) Kind() PropertyKind { return PropertyKindItem }

// Count returns how many of the item are carried. An unset quantity counts
// as one and an explicit zero as none.
func (i *Item) Count() int32 {
	if i.Quantity == nil {
		return 1
	}
	if *i.Quantity < 0 {
		return 0
	}
	return *i.Quantity
}

// IsArmor reports whether the item is body armor or a shield
func (i *Item) IsArmor() bool {
	return i.ArmorCategory.IsBodyArmor() || i.ArmorCategory == ArmorCategoryShield
}

// IsWeapon reports whether the item can make weapon attacks
func (i *Item) IsWeapon() bool {
	return i.Category == ItemCategoryWeapon || i.WeaponRange != ""
}

// HasWeaponProperty reports whether the weapon carries the given tag
func (i *Item) HasWeaponProperty(tag string) bool {
	for _, p := range i.WeaponProperties {
		if p == tag {
			return true
		}
	}
	return false
}

// Effect is a temporary condition or spell effect. Its modifiers count
// whenever it is active.
type Effect struct {
	PropertyBase
	Duration  string     `json:"duration,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

// Kind implements Property
func (*Effect) Kind() PropertyKind { return PropertyKindEffect }

// Feature is a class, racial or background feature
type Feature struct {
	PropertyBase
	Source    string     `json:"source,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

// Kind implements Property
func (*Feature) Kind() PropertyKind { return PropertyKindFeature }

// Action is something the character can do on their turn
type Action struct {
	PropertyBase
	ActionType string `json:"actionType,omitempty"`
}

// Kind implements Property
func (*Action) Kind() PropertyKind { return PropertyKindAction }

// ClassResource is a limited-use pool such as ki points or rage uses
type ClassResource struct {
	PropertyBase
	Current int32  `json:"current"`
	Max     int32  `json:"max"`
	ResetOn string `json:"resetOn,omitempty"`
}

// Kind implements Property
func (*ClassResource) Kind() PropertyKind { return PropertyKindClassResource }

// AlternateForm is a wild shape or polymorph form
type AlternateForm struct {
	PropertyBase
	FormName string `json:"formName,omitempty"`
}

// Kind implements Property
func (*AlternateForm) Kind() PropertyKind { return PropertyKindAlternateForm }

// Compile-time checks
var (
	_ Property = (*Item)(nil)
	_ Property = (*Effect)(nil)
	_ Property = (*Feature)(nil)
	_ Property = (*Action)(nil)
	_ Property = (*ClassResource)(nil)
	_ Property = (*AlternateForm)(nil)
)

// IsNilProperty reports whether p is nil or wraps a nil variant pointer
func IsNilProperty(p Property) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Item:
		return v == nil
	case *Effect:
		return v == nil
	case *Feature:
		return v == nil
	case *Action:
		return v == nil
	case *ClassResource:
		return v == nil
	case *AlternateForm:
		return v == nil
	default:
		return false
	}
}

// Properties is the ordered list of a character's properties. It is encoded
// as a JSON array of objects carrying a "type" discriminant.
type Properties []Property

// Find returns the property with the given ID
func (ps Properties) Find(id string) (Property, bool) {
	for _, p := range ps {
		if !IsNilProperty(p) && p.GetID() == id {
			return p, true
		}
	}
	return nil, false
}

// Items returns the item properties in order
func (ps Properties) Items() []*Item {
	var items []*Item
	for _, p := range ps {
		if item, ok := p.(*Item); ok && item != nil {
			items = append(items, item)
		}
	}
	return items
}

// MarshalJSON encodes each property with its "type" discriminant first
func (ps Properties) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(ps))
	for _, p := range ps {
		if IsNilProperty(p) {
			continue
		}
		body, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal %s property %q: %w", p.Kind(), p.GetID(), err)
		}
		kind, err := json.Marshal(p.Kind())
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		buf.WriteString(`{"type":`)
		buf.Write(kind)
		if inner := bytes.TrimSpace(body[1 : len(body)-1]); len(inner) > 0 {
			buf.WriteByte(',')
			buf.Write(inner)
		}
		buf.WriteByte('}')
		out = append(out, buf.Bytes())
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a list of properties using the "type" discriminant.
// A missing "active" field decodes as active.
func (ps *Properties) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	result := make(Properties, 0, len(raws))
	for i, raw := range raws {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}

		var envelope struct {
			Type   PropertyKind `json:"type"`
			Active *bool        `json:"active"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return fmt.Errorf("property %d: %w", i, err)
		}

		p, err := newProperty(envelope.Type)
		if err != nil {
			return fmt.Errorf("property %d: %w", i, err)
		}
		if err := json.Unmarshal(raw, p); err != nil {
			return fmt.Errorf("property %d (%s): %w", i, envelope.Type, err)
		}
		p.SetActive(envelope.Active == nil || *envelope.Active)
		result = append(result, p)
	}

	*ps = result
	return nil
}

func newProperty(kind PropertyKind) (Property, error) {
	switch kind {
	case PropertyKindItem:
		return &Item{}, nil
	case PropertyKindEffect:
		return &Effect{}, nil
	case PropertyKindFeature:
		return &Feature{}, nil
	case PropertyKindAction:
		return &Action{}, nil
	case PropertyKindClassResource:
		return &ClassResource{}, nil
	case PropertyKindAlternateForm:
		return &AlternateForm{}, nil
	default:
		return nil, fmt.Errorf("unknown property type %q", kind)
	}
}
