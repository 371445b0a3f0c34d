package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

const (
	unarmoredBaseAC   int32 = 10
	mediumArmorDexCap int32 = 2
)

// ArmorSelection decides which body armor counts when more than one is equipped
type ArmorSelection string

// Armor selection policies
const (
	// ArmorSelectionFirst uses the first qualifying armor in property order
	ArmorSelectionFirst ArmorSelection = "first"
	// ArmorSelectionHighest uses the qualifying armor with the highest base AC,
	// falling back to property order on ties
	ArmorSelectionHighest ArmorSelection = "highest"
)

// IsValid reports whether s is a known policy
func (s ArmorSelection) IsValid() bool {
	return s == ArmorSelectionFirst || s == ArmorSelectionHighest
}

// CalculateArmorClass returns the character's AC using the first equipped
// body armor found
func CalculateArmorClass(character *dnd5e.Character) int32 {
	return CalculateArmorClassWithSelection(character, ArmorSelectionFirst)
}

// CalculateArmorClassWithSelection returns the AC using the given armor policy
func CalculateArmorClassWithSelection(character *dnd5e.Character, selection ArmorSelection) int32 {
	mods := GetAllModifiers(character)
	return armorClass(character, resolveAbilityScores(character, mods), mods, selection)
}

func armorClass(
	character *dnd5e.Character,
	scores dnd5e.AbilityScores,
	mods []dnd5e.Modifier,
	selection ArmorSelection,
) int32 {
	dexMod := GetAbilityModifier(scores.Dexterity)

	ac := unarmoredBaseAC + dexMod
	if armor := selectBodyArmor(character, selection); armor != nil {
		switch armor.ArmorCategory {
		case dnd5e.ArmorCategoryLight:
			ac = armor.BaseAC + dexMod
		case dnd5e.ArmorCategoryMedium:
			ac = armor.BaseAC + min(dexMod, mediumArmorDexCap)
		case dnd5e.ArmorCategoryHeavy:
			ac = armor.BaseAC
		}
	}
	if shield := equippedShield(character); shield != nil {
		ac += shield.BaseAC
	}

	return ApplyModifiers(ac, FilterModifiersByTarget(mods, dnd5e.TargetArmorClass))
}

// EquippedBodyArmor returns every active, equipped light/medium/heavy item in order
func EquippedBodyArmor(character *dnd5e.Character) []*dnd5e.Item {
	if character == nil {
		return nil
	}
	var out []*dnd5e.Item
	for _, item := range character.Properties.Items() {
		if item.Active && item.Equipped && item.ArmorCategory.IsBodyArmor() {
			out = append(out, item)
		}
	}
	return out
}

// EquippedShields returns every active, equipped shield in order
func EquippedShields(character *dnd5e.Character) []*dnd5e.Item {
	if character == nil {
		return nil
	}
	var out []*dnd5e.Item
	for _, item := range character.Properties.Items() {
		if item.Active && item.Equipped && item.ArmorCategory == dnd5e.ArmorCategoryShield {
			out = append(out, item)
		}
	}
	return out
}

func selectBodyArmor(character *dnd5e.Character, selection ArmorSelection) *dnd5e.Item {
	candidates := EquippedBodyArmor(character)
	if len(candidates) == 0 {
		return nil
	}
	chosen := candidates[0]
	if selection == ArmorSelectionHighest {
		for _, c := range candidates[1:] {
			if c.BaseAC > chosen.BaseAC {
				chosen = c
			}
		}
	}
	return chosen
}

func equippedShield(character *dnd5e.Character) *dnd5e.Item {
	shields := EquippedShields(character)
	if len(shields) == 0 {
		return nil
	}
	return shields[0]
}

// CalculateInitiative returns the DEX modifier plus initiative modifiers
func CalculateInitiative(character *dnd5e.Character) int32 {
	mods := GetAllModifiers(character)
	return initiative(resolveAbilityScores(character, mods), mods)
}

func initiative(scores dnd5e.AbilityScores, mods []dnd5e.Modifier) int32 {
	return ApplyModifiers(
		GetAbilityModifier(scores.Dexterity),
		FilterModifiersByTarget(mods, dnd5e.TargetInitiative),
	)
}

// CalculateSpeed returns the base walking speed (30 when unset) plus speed modifiers
func CalculateSpeed(character *dnd5e.Character) int32 {
	return speed(character, GetAllModifiers(character))
}

func speed(character *dnd5e.Character, mods []dnd5e.Modifier) int32 {
	base := dnd5e.DefaultSpeed
	if character != nil && character.Speed != nil {
		base = *character.Speed
	}
	return ApplyModifiers(base, FilterModifiersByTarget(mods, dnd5e.TargetSpeed))
}

// WeaponAbility picks the ability a weapon attacks with: the better of STR
// and DEX for finesse weapons, otherwise STR for melee and DEX for ranged
func WeaponAbility(weapon *dnd5e.Item, scores dnd5e.AbilityScores) dnd5e.Ability {
	if weapon == nil {
		return dnd5e.AbilityStrength
	}
	if weapon.HasWeaponProperty(dnd5e.WeaponPropertyFinesse) {
		if GetAbilityModifier(scores.Dexterity) > GetAbilityModifier(scores.Strength) {
			return dnd5e.AbilityDexterity
		}
		return dnd5e.AbilityStrength
	}
	if weapon.WeaponRange == dnd5e.WeaponRangeRanged {
		return dnd5e.AbilityDexterity
	}
	return dnd5e.AbilityStrength
}

// CalculateAttackBonus returns the weapon's ability modifier, plus the
// proficiency bonus when proficient
func CalculateAttackBonus(weapon *dnd5e.Item, scores dnd5e.AbilityScores, proficient bool, proficiencyBonus int32) int32 {
	bonus := CalculateDamageBonus(weapon, scores)
	if proficient {
		bonus += proficiencyBonus
	}
	return bonus
}

// CalculateDamageBonus returns the ability modifier added to weapon damage
func CalculateDamageBonus(weapon *dnd5e.Item, scores dnd5e.AbilityScores) int32 {
	return GetAbilityModifier(scores.Get(WeaponAbility(weapon, scores)))
}

func weaponAttacks(character *dnd5e.Character, scores dnd5e.AbilityScores, proficiencyBonus int32) []dnd5e.WeaponAttack {
	if character == nil {
		return nil
	}
	var out []dnd5e.WeaponAttack
	for _, item := range character.Properties.Items() {
		if !item.Active || !item.Equipped || !item.IsWeapon() {
			continue
		}
		out = append(out, dnd5e.WeaponAttack{
			ItemID:      item.ID,
			Name:        item.Name,
			Ability:     WeaponAbility(item, scores),
			AttackBonus: CalculateAttackBonus(item, scores, item.Proficient, proficiencyBonus),
			DamageBonus: CalculateDamageBonus(item, scores),
		})
	}
	return out
}
