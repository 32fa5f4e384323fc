package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuditCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Report overlapping ranges within an agency; exits non-zero when any exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			overlaps := reg.Overlaps()
			out := cmd.OutOrStdout()
			for _, o := range overlaps {
				fmt.Fprintln(out, o.String())
			}
			if len(overlaps) > 0 {
				return fmt.Errorf("%d overlapping range pairs", len(overlaps))
			}
			fmt.Fprintf(out, "no overlapping ranges in %d agencies (%d ranges)\n", reg.Len(), reg.RangeCount())
			return nil
		},
	}
}
