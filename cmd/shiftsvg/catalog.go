package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the tokens of the active catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}

		c := r.Catalog()
		for _, token := range c.Tokens() {
			e, _ := c.Lookup(token)
			label := e.Label
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s %s %s\n",
				token, e.Fill, pterm.LightCyan(label), pterm.Gray(e.LabelColor()))
		}
		return nil
	},
}
