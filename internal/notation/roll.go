// Package notation implements the dice-notation grammar: parsing tokens like
// "2d20h1+3" into roll specifications, evaluating them, and formatting results.
package notation

import (
	"fmt"
	"strings"
)

// KeepDirection selects which end of the sorted pool is kept.
type KeepDirection int

// Keep directions
const (
	KeepHigh KeepDirection = iota
	KeepLow
)

// String returns the notation character for the direction
func (d KeepDirection) String() string {
	if d == KeepLow {
		return "l"
	}
	return "h"
}

// Keep restricts an outcome's total to a subset of the rolled dice.
// Count is never validated against the pool size at parse time; Outcome.Total
// clamps it to the pool.
type Keep struct {
	Direction KeepDirection
	Count     int
}

// KeepHighest keeps the top n dice of the sorted pool
func KeepHighest(n int) *Keep {
	return &Keep{Direction: KeepHigh, Count: n}
}

// KeepLowest keeps the bottom n dice of the sorted pool
func KeepLowest(n int) *Keep {
	return &Keep{Direction: KeepLow, Count: n}
}

// String returns the keep clause in canonical notation, e.g. "h3"
func (k *Keep) String() string {
	return fmt.Sprintf("%s%d", k.Direction, k.Count)
}

// Roll is the fully-parsed description of one dice expression. It is built
// once by Parse or by macro expansion and read-only thereafter.
type Roll struct {
	// Num is how many dice to roll. Defaults to 1 when the notation omits it.
	Num int

	// Die is the number of sides. Always set; a token without it fails to parse.
	Die int

	// Reroll is the reroll threshold. A base result at or below it is rolled
	// a second time, exactly once. Zero means no reroll (no face is ever <= 0).
	Reroll int

	// Keep selects the subset of dice that count toward the total.
	// Nil keeps all dice.
	Keep *Keep

	// Modifier is added to the summed kept total.
	Modifier int
}

// NewRoll builds a roll specification directly, bypassing the parser.
// Used by the builtin macro table.
func NewRoll(num, die int, keep *Keep) Roll {
	return Roll{Num: num, Die: die, Keep: keep}
}

// Clone returns an independent copy of the roll. Macro expansion hands out
// clones so the canonical specs in the table are never shared.
func (r Roll) Clone() Roll {
	c := r
	if r.Keep != nil {
		k := *r.Keep
		c.Keep = &k
	}
	return c
}

// String renders the roll in canonical notation. Defaults are normalized
// away: a single die omits the count, a zero reroll threshold and a zero
// modifier are dropped. Parsing the result yields an equal Roll.
func (r Roll) String() string {
	var b strings.Builder
	if r.Num > 1 {
		fmt.Fprintf(&b, "%d", r.Num)
	}
	fmt.Fprintf(&b, "d%d", r.Die)
	if r.Reroll > 0 {
		fmt.Fprintf(&b, "r%d", r.Reroll)
	}
	if r.Keep != nil {
		b.WriteString(r.Keep.String())
	}
	if r.Modifier != 0 {
		fmt.Fprintf(&b, "%+d", r.Modifier)
	}
	return b.String()
}
