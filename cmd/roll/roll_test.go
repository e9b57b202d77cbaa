package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-cli/internal/notation"
	"github.com/KirkDiggler/roll-cli/internal/orchestrators/roller"
)

func TestPrintResults_SingleRoll(t *testing.T) {
	output := &roller.RollTokensOutput{
		Results: []*roller.RollResult{
			{
				Roll:     notation.Roll{Num: 1, Die: 6},
				Outcome:  notation.NewOutcome([]notation.DieRoll{notation.KeptDie(4)}, nil, 0),
				Expected: 3.5,
			},
		},
		Total: 4,
	}

	var b strings.Builder
	printResults(&b, output)

	// A single roll prints no combined total.
	assert.Equal(t, "d6: 4 (4) (Expected: 3.5)\n", b.String())
}

func TestPrintResults_MultipleRolls(t *testing.T) {
	advantage := notation.Roll{Num: 2, Die: 20, Keep: notation.KeepHighest(1)}
	damage := notation.Roll{Num: 2, Die: 6, Modifier: 3}

	output := &roller.RollTokensOutput{
		Results: []*roller.RollResult{
			{
				Roll: advantage,
				Outcome: notation.NewOutcome([]notation.DieRoll{
					notation.KeptDie(18), notation.KeptDie(7),
				}, advantage.Keep, 0),
				Expected: 10.5,
			},
			{
				Roll: damage,
				Outcome: notation.NewOutcome([]notation.DieRoll{
					notation.RerolledDie(1, 4), notation.KeptDie(6),
				}, nil, 3),
				Expected: 10,
			},
		},
		Total: 31,
	}

	var b strings.Builder
	printResults(&b, output)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2d20h1: 18 (7, 18) (Expected: 10.5)", lines[0])
	assert.Equal(t, "2d6+3: 13 (1=>4, 6) + 3 (Expected: 10)", lines[1])
	assert.Equal(t, "Total: 31", lines[2])
}
