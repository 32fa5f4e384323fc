package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/busfleet"
	"github.com/theoremus-urban-solutions/busfleet/config"
	"github.com/theoremus-urban-solutions/busfleet/internal"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup page and JSON API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			if tc := config.Config.Telemetry; tc.Enabled {
				shutdown, err := internal.InitTracing(cmd.Context(), tc.ServiceName, os.Stderr)
				if err != nil {
					return err
				}
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := shutdown(ctx); err != nil {
						c.log.Warn("tracer shutdown", "error", err)
					}
				}()
			}
			srv, err := busfleet.NewServer(config.Config, reg, c.log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
}
