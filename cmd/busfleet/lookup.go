package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/busfleet"
)

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <agency> <busId>",
		Short: "Print the spec for one fleet number as the API would return it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			var (
				status int
				body   any
			)
			res, err := reg.Lookup(args[0], args[1])
			if err != nil {
				qe := busfleet.QueryErrorFrom(err)
				status, body = qe.Status, map[string]any{"detail": qe.Detail}
			} else {
				status, body = busfleet.BuildResultPayload(res)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(body); err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("%s %s: %s", args[0], args[1], http.StatusText(status))
			}
			return nil
		},
	}
}
