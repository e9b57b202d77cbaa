package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "List the loaded macro table",
	Args:  cobra.NoArgs,
	RunE:  runMacros,
}

func runMacros(cmd *cobra.Command, _ []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, name := range table.Names() {
		rolls, _ := table.Lookup(name)
		parts := make([]string, len(rolls))
		for i, roll := range rolls {
			parts[i] = roll.String()
		}
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(parts, " "))
	}
	return nil
}
