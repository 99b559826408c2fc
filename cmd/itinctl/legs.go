package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"ITINERARY_BACK-END/internal/itinerary"
)

func addLegs(topLevel *cobra.Command) {
	fo := &FileOptions{}
	vo := &ViewOptions{}

	cmd := &cobra.Command{
		Use:   "legs",
		Short: "Print the routed legs and the segments between breaks",
		Example: `
itinctl legs -f trip.json
itinctl legs -f trip.json --type restaurant
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := fo.Load()
			if err != nil {
				return err
			}
			view, err := vo.Apply(list)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			legs := itinerary.BuildLegs(view)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("FROM"), bold("TO"), bold("MODE"))
			for _, leg := range legs {
				tbl.AddRow(view[leg.OriginIndex].Name, view[leg.DestinationIndex].Name, leg.TravelMode)
			}
			_, _ = fmt.Fprintln(out, underline("Legs"))
			_, _ = fmt.Fprintln(out, tbl)

			_, _ = fmt.Fprintln(out, "\n"+underline("Segments"))
			for i, seg := range itinerary.Segments(view) {
				first, last := view[seg.Start].Name, view[seg.End-1].Name
				_, _ = fmt.Fprintf(out, "%d. %s .. %s (%d stops)\n", i+1, first, last, seg.Len())
			}
			return nil
		},
	}

	AddFileArgs(cmd, fo)
	AddViewArgs(cmd, vo)
	topLevel.AddCommand(cmd)
}
