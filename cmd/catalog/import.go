package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"protoroute/internal/bundle"
)

func newImportCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <bundle.yaml>",
		Short: "Import a route guide from a YAML bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open bundle: %w", err)
			}
			defer f.Close()

			b, err := bundle.Load(f)
			if err != nil {
				return err
			}
			store, err := open()
			if err != nil {
				return err
			}
			res, err := bundle.Import(cmd.Context(), store, b)
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(),
				"✓ Imported %s (%d segments, %d points)\n", res.GuideID, res.Segments, res.Points)
			return nil
		},
	}
}
