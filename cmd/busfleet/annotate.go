package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/busfleet/fleet"
	"github.com/theoremus-urban-solutions/busfleet/gtfsrt"
	"github.com/theoremus-urban-solutions/busfleet/utils"
)

type annotateOutput struct {
	Agency        string                    `json:"agency"`
	FeedTimestamp string                    `json:"feed_timestamp,omitempty"`
	Summary       gtfsrt.Summary            `json:"summary"`
	Vehicles      []gtfsrt.AnnotatedVehicle `json:"vehicles"`
}

func newAnnotateCmd(c *cli) *cobra.Command {
	var (
		agency  string
		feedSrc string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Attach fleet specs to every vehicle in a GTFS-RT vehicle positions feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			data, err := gtfsrt.NewClient(timeout).Fetch(cmd.Context(), feedSrc)
			if err != nil {
				return err
			}
			feed, err := gtfsrt.DecodeVehicles(data)
			if err != nil {
				return err
			}
			vehicles, err := gtfsrt.Annotate(reg, agency, feed)
			if err != nil {
				return err
			}
			summary := gtfsrt.Summarize(vehicles)
			c.log.Info("annotated feed",
				"agency", agency,
				"vehicles", summary.Total,
				"matched", summary.Matched,
				"suggested", summary.Suggested,
				"unmatched", summary.Unmatched,
			)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(annotateOutput{
				Agency:        fleet.NormalizeKey(agency),
				FeedTimestamp: utils.Iso8601FromUnixSeconds(feed.HeaderTimestamp),
				Summary:       summary,
				Vehicles:      vehicles,
			})
		},
	}
	cmd.Flags().StringVarP(&agency, "agency", "a", "", "Agency whose fleet numbers the feed uses")
	cmd.Flags().StringVarP(&feedSrc, "feed", "f", "", "Vehicle positions feed URL or file")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "HTTP timeout")
	_ = cmd.MarkFlagRequired("agency")
	_ = cmd.MarkFlagRequired("feed")
	return cmd
}
