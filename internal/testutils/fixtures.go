package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// Fixture IDs
const (
	FighterID = "char_fighter"
	WizardID  = "char_wizard"

	// TestPlayerID owns every fixture character
	TestPlayerID = "player_test"
)

// Fighter returns a level 5 fighter in chain mail with an unequipped shield.
// Armor class is 16, or 18 with the shield equipped.
func Fighter() *dnd5e.Character {
	shield := builders.Armor("shield", dnd5e.ArmorCategoryShield, 2)
	shield.Equipped = false

	return builders.NewCharacterBuilder().
		WithID(FighterID).
		WithName("Brann").
		WithPlayerID(TestPlayerID).
		WithLevel(5).
		WithHitDie(10).
		WithAbilities(16, 14, 14, 10, 12, 8).
		WithSavingThrowProficiency(dnd5e.AbilityStrength, dnd5e.AbilityConstitution).
		WithSkillProficiency(dnd5e.SkillAthletics, dnd5e.SkillPerception).
		WithProperty(builders.Armor("chain-mail", dnd5e.ArmorCategoryHeavy, 16)).
		WithProperty(shield).
		WithProperty(builders.Weapon("longsword")).
		Build()
}

// Wizard returns a level 3 intelligence caster with no armor
func Wizard() *dnd5e.Character {
	return builders.NewCharacterBuilder().
		WithID(WizardID).
		WithName("Ysolde").
		WithPlayerID(TestPlayerID).
		WithLevel(3).
		WithHitDie(6).
		WithAbilities(8, 14, 12, 16, 13, 10).
		WithSavingThrowProficiency(dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom).
		WithSkillProficiency(dnd5e.SkillArcana).
		WithSpellcasting(dnd5e.AbilityIntelligence).
		Build()
}
