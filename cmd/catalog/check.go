package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Scan stored data for broken references and parent rule violations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			violations, err := store.Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				color.New(color.FgGreen).Fprintln(out, "✓ No violations found")
				return nil
			}
			yellow := color.New(color.FgYellow)
			for _, v := range violations {
				yellow.Fprintf(out, "  %s\n", v)
			}
			return fmt.Errorf("%d violation(s) found", len(violations))
		},
	}
}
