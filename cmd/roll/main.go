// Package main is the entry point for the roll CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/roll-cli/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "roll [token ...]",
	Short: "Dice-notation roller",
	Long: `roll parses dice notation such as 2d20h1+3 and 4d6l3, simulates the rolls,
and reports each outcome alongside its statistically expected value.

Tokens may also name macros: the builtins adv (advantage), dis (disadvantage),
and stats (six ability scores), plus anything loaded with --macros.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runRoll,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	macroFile string
	verbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&macroFile, "macros", "", "path to a macro definitions file (text or YAML)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.AddCommand(expectedCmd)
	rootCmd.AddCommand(macrosCmd)
}
