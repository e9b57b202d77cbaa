package roller

import (
	"github.com/KirkDiggler/roll-cli/internal/notation"
)

// RollTokensInput defines the request for resolving and evaluating tokens
type RollTokensInput struct {
	// Tokens are the raw command-line arguments: macro names or dice notation
	Tokens []string
}

// RollTokensOutput defines the response for resolving and evaluating tokens
type RollTokensOutput struct {
	// Results holds one entry per resolved roll, in resolution order
	Results []*RollResult

	// Total is the sum of all outcome totals
	Total int
}

// RollResult pairs one resolved roll with its evaluated outcome
type RollResult struct {
	// RollID uniquely identifies this roll for log correlation
	RollID string

	// Roll is the specification that was evaluated
	Roll notation.Roll

	// Outcome is the concrete result of evaluating the roll
	Outcome notation.Outcome

	// Expected is the theoretical mean total of the roll
	Expected float64
}

// ExpectedTotalsInput defines the request for computing theoretical means
type ExpectedTotalsInput struct {
	Tokens []string
}

// ExpectedTotalsOutput defines the response for computing theoretical means
type ExpectedTotalsOutput struct {
	Expectations []*Expectation
}

// Expectation pairs one resolved roll with its theoretical mean total
type Expectation struct {
	Roll     notation.Roll
	Expected float64
}
