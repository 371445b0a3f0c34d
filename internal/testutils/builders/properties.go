package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Armor returns an active, equipped armor item
func Armor(id string, category dnd5e.ArmorCategory, baseAC int32) *dnd5e.Item {
	return &dnd5e.Item{
		PropertyBase:  dnd5e.PropertyBase{ID: id, Name: id, Active: true},
		Category:      dnd5e.ItemCategoryArmor,
		Equipped:      true,
		ArmorCategory: category,
		BaseAC:        baseAC,
	}
}

// Weapon returns an active, equipped, proficient melee weapon
func Weapon(id string, properties ...string) *dnd5e.Item {
	return &dnd5e.Item{
		PropertyBase:     dnd5e.PropertyBase{ID: id, Name: id, Active: true},
		Category:         dnd5e.ItemCategoryWeapon,
		Equipped:         true,
		WeaponRange:      dnd5e.WeaponRangeMelee,
		WeaponProperties: properties,
		Proficient:       true,
	}
}

// Gear returns an active, unequipped item with weight
func Gear(id string, weight float64, quantity int32) *dnd5e.Item {
	return &dnd5e.Item{
		PropertyBase: dnd5e.PropertyBase{ID: id, Name: id, Active: true},
		Category:     dnd5e.ItemCategoryGear,
		Weight:       weight,
		Quantity:     &quantity,
	}
}

// Effect returns an active effect carrying mods
func Effect(id string, mods ...dnd5e.Modifier) *dnd5e.Effect {
	return &dnd5e.Effect{
		PropertyBase: dnd5e.PropertyBase{ID: id, Name: id, Active: true},
		Modifiers:    mods,
	}
}

// Feature returns an active feature carrying mods
func Feature(id string, mods ...dnd5e.Modifier) *dnd5e.Feature {
	return &dnd5e.Feature{
		PropertyBase: dnd5e.PropertyBase{ID: id, Name: id, Active: true},
		Modifiers:    mods,
	}
}

// Bonus returns an active numeric modifier
func Bonus(target string, value int32) dnd5e.Modifier {
	return dnd5e.Modifier{Target: target, Type: dnd5e.ModifierTypeBonus, Value: value, Active: true}
}

// Advantage returns an active advantage modifier
func Advantage(target string) dnd5e.Modifier {
	return dnd5e.Modifier{Target: target, Type: dnd5e.ModifierTypeAdvantage, Active: true}
}

// Disadvantage returns an active disadvantage modifier
func Disadvantage(target string) dnd5e.Modifier {
	return dnd5e.Modifier{Target: target, Type: dnd5e.ModifierTypeDisadvantage, Active: true}
}
