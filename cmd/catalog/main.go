package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"protoroute/internal/catalog"
	"protoroute/internal/config"
	"protoroute/internal/logger"
)

// storeOpener connects to the configured catalog on demand.
type storeOpener func() (*catalog.Store, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Route guide catalog tooling",
		Long: `catalog manages the route guide database: it creates the schema,
imports guides from YAML bundles, exports them as GeoJSON, checks stored data
for broken references and deletes guides with everything that hangs off them.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load before reading settings")

	open := func() (*catalog.Store, error) { return openStore(envFile) }
	rootCmd.AddCommand(newMigrateCmd(open))
	rootCmd.AddCommand(newCheckCmd(open))
	rootCmd.AddCommand(newImportCmd(open))
	rootCmd.AddCommand(newExportCmd(open))
	rootCmd.AddCommand(newDeleteGuideCmd(open))
	rootCmd.AddCommand(newDecodeTrackCmd())
	return rootCmd
}

// openStore reads the configuration, sets up logging and connects.
func openStore(envFile string) (*catalog.Store, error) {
	cfg := config.Load(envFile)
	if err := logger.Setup(cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	db, err := config.Open(cfg.Database, logger.GormLogger(cfg.Database.LogLevel))
	if err != nil {
		return nil, err
	}
	logrus.WithField("driver", cfg.Database.Driver).Info("connected to database")

	return catalog.New(db, logrus.StandardLogger())
}
