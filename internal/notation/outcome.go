package notation

import (
	"fmt"
	"sort"
	"strings"
)

// DieRoll is the result of rolling one die. When the roll specification
// carried a reroll threshold and the first result was at or below it, the die
// was rolled a second time and both values are recorded.
type DieRoll struct {
	// Original is the first value rolled.
	Original int

	// Final is the value that counts toward totals. Equal to Original unless
	// the die was rerolled.
	Final int

	// Rerolled marks that the reroll threshold triggered a second roll.
	Rerolled bool
}

// KeptDie records a die that was rolled once
func KeptDie(value int) DieRoll {
	return DieRoll{Original: value, Final: value}
}

// RerolledDie records a die whose first result triggered a reroll
func RerolledDie(original, final int) DieRoll {
	return DieRoll{Original: original, Final: final, Rerolled: true}
}

// Value returns the effective value of the die
func (d DieRoll) Value() int {
	return d.Final
}

// String renders the die as its value, or "original=>final" when rerolled
func (d DieRoll) String() string {
	if d.Rerolled {
		return fmt.Sprintf("%d=>%d", d.Original, d.Final)
	}
	return fmt.Sprintf("%d", d.Final)
}

// Outcome is the concrete result of evaluating one roll specification.
// The dice are held sorted ascending by effective value so keep-high and
// keep-low reduce to slicing off either end. Immutable once built.
type Outcome struct {
	rolls    []DieRoll
	keep     *Keep
	modifier int
}

// NewOutcome builds an outcome from per-die results, sorting them ascending
// by effective value. The keep selector and modifier are carried over from
// the roll specification that produced the dice.
func NewOutcome(rolls []DieRoll, keep *Keep, modifier int) Outcome {
	sorted := make([]DieRoll, len(rolls))
	copy(sorted, rolls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value() < sorted[j].Value()
	})
	return Outcome{rolls: sorted, keep: keep, modifier: modifier}
}

// Rolls returns the per-die results in ascending order of effective value.
// Callers must not modify the returned slice.
func (o Outcome) Rolls() []DieRoll {
	return o.rolls
}

// Modifier returns the modifier carried over from the roll specification
func (o Outcome) Modifier() int {
	return o.modifier
}

// Total sums the kept dice and adds the modifier. A keep count larger than
// the pool is clamped to the pool, so the total never fails.
func (o Outcome) Total() int {
	kept := o.rolls
	if o.keep != nil {
		n := o.keep.Count
		if n > len(o.rolls) {
			n = len(o.rolls)
		}
		if o.keep.Direction == KeepHigh {
			kept = o.rolls[len(o.rolls)-n:]
		} else {
			kept = o.rolls[:n]
		}
	}

	total := o.modifier
	for _, die := range kept {
		total += die.Value()
	}
	return total
}

// String renders the outcome as "<total> (<die>, <die>, ...)" with the
// modifier appended as " + m" or " - m" when present.
func (o Outcome) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ", o.Total())

	parts := make([]string, len(o.rolls))
	for i, die := range o.rolls {
		parts[i] = die.String()
	}
	fmt.Fprintf(&b, "(%s)", strings.Join(parts, ", "))

	if o.modifier > 0 {
		fmt.Fprintf(&b, " + %d", o.modifier)
	} else if o.modifier < 0 {
		fmt.Fprintf(&b, " - %d", -o.modifier)
	}
	return b.String()
}
