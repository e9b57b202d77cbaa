package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-cli/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Roll
	}{
		{
			token: "d20",
			want:  Roll{Num: 1, Die: 20},
		},
		{
			token: "3d6+2",
			want:  Roll{Num: 3, Die: 6, Modifier: 2},
		},
		{
			token: "2d20h1",
			want:  Roll{Num: 2, Die: 20, Keep: KeepHighest(1)},
		},
		{
			token: "4d6l3",
			want:  Roll{Num: 4, Die: 6, Keep: KeepLowest(3)},
		},
		{
			token: "d6r2",
			want:  Roll{Num: 1, Die: 6, Reroll: 2},
		},
		{
			token: "1d6",
			want:  Roll{Num: 1, Die: 6},
		},
		{
			token: "4d6r1h3-2",
			want:  Roll{Num: 4, Die: 6, Reroll: 1, Keep: KeepHighest(3), Modifier: -2},
		},
		{
			token: "2d8h0",
			want:  Roll{Num: 2, Die: 8, Keep: KeepHighest(0)},
		},
		{
			token: "d100r10+0",
			want:  Roll{Num: 1, Die: 100, Reroll: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParse_MissingDie(t *testing.T) {
	for _, token := range []string{"d", "3d", "dr2", "dh1"} {
		t.Run(token, func(t *testing.T) {
			_, err := Parse(token)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), "no die specified")
		})
	}
}

// The grammar is anchored to the full token, so tokens with leading or
// trailing garbage are rejected outright rather than partially matched.
func TestParse_Malformed(t *testing.T) {
	tokens := []string{
		"",
		"xd6",      // bad dice count never matches the anchored pattern
		"2d20h1junk",
		"roll 2d6",
		"2d6 ",
		"d6rr2",
		"6",
		"stats",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, err := Parse(token)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), "could not parse")
		})
	}
}

func TestParse_NumberOverflow(t *testing.T) {
	// Components are all digits so they match the grammar, but exceed what
	// strconv can hold; the failure names the component.
	tests := []struct {
		token string
		want  string
	}{
		{"99999999999999999999d6", "invalid dice count"},
		{"d99999999999999999999", "invalid die size"},
		{"d6r99999999999999999999", "invalid reroll threshold"},
		{"4d6h99999999999999999999", "invalid keep count"},
		{"d6+99999999999999999999", "invalid modifier"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, err := Parse(tt.token)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
