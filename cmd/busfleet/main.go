package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/busfleet/config"
	"github.com/theoremus-urban-solutions/busfleet/fleet"
	"github.com/theoremus-urban-solutions/busfleet/internal"
)

// cli holds flags shared by every command
type cli struct {
	configPath   string
	registryPath string
	logLevel     string
	log          *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "busfleet",
		Short: "Bus fleet number lookup",
		Long: `busfleet answers "what kind of bus is fleet number N at agency A?"
from curated per-agency fleet number ranges, and suggests other agencies
when the number belongs elsewhere.

Examples:
  # Serve the lookup page and JSON API
  busfleet serve --config config.yml

  # Look up one vehicle
  busfleet lookup WMATA 1042

  # Annotate a GTFS-RT vehicle positions feed
  busfleet annotate --agency WMATA --feed https://example.org/vehicles.pb`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file (default: config.yml or ./config/config.yml)")
	root.PersistentFlags().StringVar(&c.registryPath, "registry", "", "YAML fleet registry (overrides registry.path)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides logging.level)")

	root.AddCommand(
		newServeCmd(c),
		newLookupCmd(c),
		newAgenciesCmd(c),
		newAuditCmd(c),
		newAnnotateCmd(c),
	)
	return root
}

// setup loads configuration and installs logging. Only serve logs to stdout;
// the other commands keep stdout for their output.
func (c *cli) setup(cmd *cobra.Command) error {
	if err := config.LoadAppConfig(c.configPath); err != nil {
		return err
	}
	if c.logLevel != "" {
		config.Config.Logging.Level = c.logLevel
	}
	if c.registryPath != "" {
		config.Config.Registry.Path = c.registryPath
	}
	lc := config.Config.Logging
	if cmd.Name() == "serve" {
		c.log = internal.InitLogging(lc.Level, lc.Format)
	} else {
		c.log = internal.NewLogger(cmd.ErrOrStderr(), lc.Level, lc.Format)
	}
	return nil
}

// registry returns the configured YAML registry or the built-in dataset
func (c *cli) registry() (*fleet.Registry, error) {
	path := config.Config.Registry.Path
	if path == "" {
		return fleet.Default(), nil
	}
	reg, err := fleet.LoadRegistryFile(path)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	c.log.Info("loaded fleet registry", "path", path, "agencies", reg.Len(), "ranges", reg.RangeCount())
	return reg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
