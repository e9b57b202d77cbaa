package notation

// expectedDie computes the theoretical mean of a single die with an optional
// reroll threshold. A face at or below the threshold is replaced by a fresh
// uniform draw, so it contributes the unconditional average face value; every
// other face contributes itself.
func expectedDie(die, reroll int) float64 {
	avg := float64(die)/2.0 + 0.5

	var total float64
	for face := 1; face <= die; face++ {
		if face <= reroll {
			total += avg
		} else {
			total += float64(face)
		}
	}
	return total / float64(die)
}

// ExpectedTotal computes the theoretical mean total of the roll without
// performing any randomness. When a keep selector is present the per-die
// expectation is multiplied by the keep count rather than the dice count.
// This deliberately ignores order-statistics correlation; the approximation
// is part of the documented output.
func (r Roll) ExpectedTotal() float64 {
	count := r.Num
	if r.Keep != nil {
		count = r.Keep.Count
	}
	return expectedDie(r.Die, r.Reroll)*float64(count) + float64(r.Modifier)
}
