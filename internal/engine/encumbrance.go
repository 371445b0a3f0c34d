package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

const carryingCapacityPerStrength int32 = 15

// CalculateCarryingCapacity returns STR score x 15 pounds
func CalculateCarryingCapacity(scores dnd5e.AbilityScores) int32 {
	return scores.Strength * carryingCapacityPerStrength
}

// CalculateCurrentLoad sums weight x quantity over active items, equipped or
// not. An unset quantity counts as one.
func CalculateCurrentLoad(character *dnd5e.Character) float64 {
	if character == nil {
		return 0
	}
	var load float64
	for _, item := range character.Properties.Items() {
		if !item.Active {
			continue
		}
		load += item.Weight * float64(item.Count())
	}
	return load
}

// IsEncumbered reports whether the load exceeds the carrying capacity
func IsEncumbered(load float64, capacity int32) bool {
	return load > float64(capacity)
}
