// Package roller implements the orchestrator that resolves tokens through the
// macro table and evaluates the resulting roll specifications.
package roller

//go:generate mockgen -destination=mock/mock_service.go -package=rollermock github.com/KirkDiggler/roll-cli/internal/orchestrators/roller Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roll-cli/internal/errors"
	"github.com/KirkDiggler/roll-cli/internal/macros"
	"github.com/KirkDiggler/roll-cli/internal/pkg/idgen"
)

// Service defines the interface for roll operations
type Service interface {
	// RollTokens resolves tokens and evaluates every resulting roll
	RollTokens(ctx context.Context, input *RollTokensInput) (*RollTokensOutput, error)

	// ExpectedTotals resolves tokens and computes theoretical means without
	// performing any randomness
	ExpectedTotals(ctx context.Context, input *ExpectedTotalsInput) (*ExpectedTotalsOutput, error)
}

// Config holds the dependencies for the roller orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Macros      *macros.Table
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Macros == nil {
		vb.RequiredField("Macros")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
	macros *macros.Table
}

// NewOrchestrator creates a new roller orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		macros: cfg.Macros,
	}, nil
}

// RollTokens resolves the token list through the macro table and evaluates
// each resulting roll in order. Resolution is fail-fast: the first invalid
// token aborts the batch before any dice are rolled.
func (o *orchestrator) RollTokens(ctx context.Context, input *RollTokensInput) (*RollTokensOutput, error) {
	if len(input.Tokens) == 0 {
		return nil, errors.InvalidArgument("at least one token is required")
	}

	rolls, err := o.macros.Resolve(input.Tokens)
	if err != nil {
		return nil, err
	}

	output := &RollTokensOutput{
		Results: make([]*RollResult, 0, len(rolls)),
	}
	for _, roll := range rolls {
		outcome, err := roll.Evaluate(o.roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to evaluate %s", roll)
		}

		result := &RollResult{
			RollID:   o.idGen.Generate(),
			Roll:     roll,
			Outcome:  outcome,
			Expected: roll.ExpectedTotal(),
		}
		output.Results = append(output.Results, result)
		output.Total += outcome.Total()

		slog.DebugContext(ctx, "Roll evaluated",
			"roll_id", result.RollID,
			"notation", roll.String(),
			"total", outcome.Total(),
			"expected", result.Expected,
		)
	}

	return output, nil
}

// ExpectedTotals resolves the token list and computes each roll's theoretical
// mean. No randomness is involved.
func (o *orchestrator) ExpectedTotals(ctx context.Context, input *ExpectedTotalsInput) (*ExpectedTotalsOutput, error) {
	if len(input.Tokens) == 0 {
		return nil, errors.InvalidArgument("at least one token is required")
	}

	rolls, err := o.macros.Resolve(input.Tokens)
	if err != nil {
		return nil, err
	}

	output := &ExpectedTotalsOutput{
		Expectations: make([]*Expectation, 0, len(rolls)),
	}
	for _, roll := range rolls {
		output.Expectations = append(output.Expectations, &Expectation{
			Roll:     roll,
			Expected: roll.ExpectedTotal(),
		})
	}

	slog.DebugContext(ctx, "Expected totals computed",
		"tokens", len(input.Tokens),
		"rolls", len(output.Expectations),
	)

	return output, nil
}
