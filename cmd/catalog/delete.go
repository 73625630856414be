package main

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"protoroute/internal/catalog"
)

func newDeleteGuideCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-guide <guide-id>",
		Short: "Delete a guide and every record that depends on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			report, err := store.RouteGuides.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted %s (%d rows)\n", args[0], report.Total())
			printReport(cmd, report)
			return nil
		},
	}
}

func printReport(cmd *cobra.Command, report catalog.DeleteReport) {
	tables := make([]string, 0, len(report))
	for name := range report {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	gray := color.New(color.FgHiBlack)
	for _, name := range tables {
		if report[name] == 0 {
			continue
		}
		gray.Fprintf(cmd.OutOrStdout(), "  %-40s %d\n", name, report[name])
	}
}
