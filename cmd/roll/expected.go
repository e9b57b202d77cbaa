package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/roll-cli/internal/orchestrators/roller"
)

var expectedCmd = &cobra.Command{
	Use:   "expected [token ...]",
	Short: "Print theoretical mean totals without rolling",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExpected,
}

func runExpected(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	output, err := svc.ExpectedTotals(cmd.Context(), &roller.ExpectedTotalsInput{Tokens: args})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, e := range output.Expectations {
		fmt.Fprintf(w, "%s: %v\n", e.Roll, e.Expected)
	}
	return nil
}
