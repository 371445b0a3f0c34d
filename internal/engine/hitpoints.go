package engine

// HitDieSizes lists the hit dice used by the 5e classes
var HitDieSizes = []int32{6, 8, 10, 12}

// CalculateMaxHP returns maximum hit points.
//
// Level 1 is the full hit die plus CON. Each later level adds half the die
// (rounded up), plus one when useAverage is set, plus CON. Only the final
// total is floored at 1; a single level may contribute a negative amount.
func CalculateMaxHP(hitDieSize, conMod, level int32, useAverage bool) int32 {
	if level < 1 {
		level = 1
	}

	total := hitDieSize + conMod
	perLevel := HitDiePerLevel(hitDieSize, useAverage) + conMod
	total += perLevel * (level - 1)

	if total < 1 {
		return 1
	}
	return total
}

// HitDiePerLevel returns the fixed hit points a level grants before CON
func HitDiePerLevel(hitDieSize int32, useAverage bool) int32 {
	half := (hitDieSize + 1) / 2
	if useAverage {
		return half + 1
	}
	return half
}

// IsValidHitDie reports whether size is a class hit die
func IsValidHitDie(size int32) bool {
	for _, s := range HitDieSizes {
		if s == size {
			return true
		}
	}
	return false
}
