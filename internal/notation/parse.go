package notation

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/roll-cli/internal/errors"
)

var (
	// Anchored grammar: [num] "d" die ["r" reroll] [("h"|"l") keep] [("+"|"-") modifier].
	// The whole token must match; trailing or leading garbage is rejected.
	notationRegex = regexp.MustCompile(`^([0-9]*)d([0-9]+)(?:r([0-9]+))?(?:([hl])([0-9]+))?(?:([+-][0-9]+))?$`)

	// Matches tokens that start like dice notation but stop at the die size,
	// e.g. "d", "3d", "dr2". Used to report a missing die instead of a
	// generic parse failure.
	missingDieRegex = regexp.MustCompile(`^[0-9]*d(?:$|[^0-9])`)
)

// Parse converts a single whitespace-free token into a roll specification.
// The token must match the grammar in full; defaults are filled in for
// omitted components (Num = 1, no reroll, no keep, no modifier).
func Parse(token string) (*Roll, error) {
	m := notationRegex.FindStringSubmatch(token)
	if m == nil {
		if missingDieRegex.MatchString(token) {
			return nil, errors.InvalidArgument("no die specified").WithMeta("token", token)
		}
		return nil, errors.InvalidArgumentf("could not parse %q as dice notation", token).
			WithMeta("token", token)
	}

	roll := &Roll{Num: 1}

	if m[1] != "" {
		num, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid dice count in %q", token)
		}
		roll.Num = num
	}

	die, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid die size in %q", token)
	}
	roll.Die = die

	if m[3] != "" {
		reroll, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid reroll threshold in %q", token)
		}
		roll.Reroll = reroll
	}

	if m[4] != "" {
		count, err := strconv.Atoi(m[5])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid keep count in %q", token)
		}
		switch m[4] {
		case "h":
			roll.Keep = KeepHighest(count)
		case "l":
			roll.Keep = KeepLowest(count)
		default:
			// Unreachable given the character class in the grammar.
			return nil, errors.Internalf("unrecognized keep direction %q", m[4])
		}
	}

	if m[6] != "" {
		modifier, err := strconv.Atoi(m[6])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid modifier in %q", token)
		}
		roll.Modifier = modifier
	}

	return roll, nil
}
