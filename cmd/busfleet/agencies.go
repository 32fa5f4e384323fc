package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
)

func newAgenciesCmd(c *cli) *cobra.Command {
	var dump, asJSON bool
	cmd := &cobra.Command{
		Use:   "agencies",
		Short: "List agencies, or dump the whole registry as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case dump:
				return fleet.WriteRegistry(out, reg)
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reg.Agencies())
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tRANGES")
			for _, a := range reg.Fleets() {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", a.Key, a.DisplayName, a.RangeCount())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Write the registry in the YAML format --registry reads")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print [{key, display_name}] as JSON")
	return cmd
}
