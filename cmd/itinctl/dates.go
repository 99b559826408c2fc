package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"ITINERARY_BACK-END/internal/itinerary"
)

func addDates(topLevel *cobra.Command) {
	fo := &FileOptions{}

	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Print the timeline, one group per day",
		Example: `
itinctl dates -f trip.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := fo.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, day := range itinerary.GroupByDate(list) {
				_, _ = fmt.Fprintf(out, "%s  %s\n", underline(day.Date), faint("budget "+formatAmount(day.Budget)))
				tbl := uitable.New()
				tbl.Separator = "  "
				for i, d := range day.Destinations {
					tbl.AddRow(day.SequenceNumbers[i], d.Time, d.Name, d.Location)
				}
				_, _ = fmt.Fprintln(out, tbl)
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}

	AddFileArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}
