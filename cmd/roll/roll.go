package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/roll-cli/internal/macros"
	"github.com/KirkDiggler/roll-cli/internal/orchestrators/roller"
	"github.com/KirkDiggler/roll-cli/internal/pkg/idgen"
)

// loadTable builds the macro table: builtins plus any definitions from the
// --macros flag. A malformed definitions file is fatal.
func loadTable() (*macros.Table, error) {
	table := macros.NewTable()
	if macroFile != "" {
		if err := table.LoadFile(macroFile); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func newService() (roller.Service, error) {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	table, err := loadTable()
	if err != nil {
		return nil, err
	}

	return roller.NewOrchestrator(&roller.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("roll"),
		Macros:      table,
	})
}

func runRoll(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	output, err := svc.RollTokens(cmd.Context(), &roller.RollTokensInput{Tokens: args})
	if err != nil {
		return err
	}

	printResults(cmd.OutOrStdout(), output)
	return nil
}

// printResults writes one line per evaluated roll plus, when more than one
// roll was requested, a final combined total.
func printResults(w io.Writer, output *roller.RollTokensOutput) {
	for _, result := range output.Results {
		fmt.Fprintf(w, "%s: %s (Expected: %v)\n", result.Roll, result.Outcome, result.Expected)
	}
	if len(output.Results) > 1 {
		fmt.Fprintf(w, "Total: %d\n", output.Total)
	}
}
