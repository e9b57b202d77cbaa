package notation

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roll-cli/internal/errors"
)

// Evaluate rolls the dice described by the specification using the provided
// roller and collects the results into an Outcome. A die whose base value is
// at or below the reroll threshold is rolled exactly once more, regardless of
// the replacement's value.
func (r Roll) Evaluate(roller dice.Roller) (Outcome, error) {
	if roller == nil {
		return Outcome{}, errors.InvalidArgument("roller is required")
	}
	if r.Die < 1 {
		return Outcome{}, errors.InvalidArgumentf("die size must be positive, got %d", r.Die)
	}

	rolls := make([]DieRoll, 0, r.Num)
	for i := 0; i < r.Num; i++ {
		base, err := roller.Roll(r.Die)
		if err != nil {
			return Outcome{}, errors.Wrapf(err, "failed to roll d%d", r.Die)
		}

		if r.Reroll > 0 && base <= r.Reroll {
			replacement, err := roller.Roll(r.Die)
			if err != nil {
				return Outcome{}, errors.Wrapf(err, "failed to reroll d%d", r.Die)
			}
			rolls = append(rolls, RerolledDie(base, replacement))
			continue
		}
		rolls = append(rolls, KeptDie(base))
	}

	return NewOutcome(rolls, r.Keep, r.Modifier), nil
}
