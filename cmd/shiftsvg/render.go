package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/vodvud/shift-svg/shift"
)

var renderCmd = &cobra.Command{
	Use:   "render KEY",
	Short: "Render the icon for KEY",
	Long: `Render the icon for KEY to stdout, or to a file with --output.

A key without any known token prints nothing; with --output it is an error,
since there is no document to save.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		r, err := newRenderer()
		if err != nil {
			return err
		}

		if output == "" {
			out, err := r.RenderKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}

		doc := shift.Document(r.Catalog().Resolve(args[0]))
		if doc == nil {
			return errors.Newf("key %q has no known token", args[0])
		}
		path, ok := doc.SaveAs(output)
		if !ok {
			return errors.Newf("cannot save icon to %s", output)
		}
		pterm.Success.Printfln("Saved %s", path)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write the icon to this file")
}
