package main

import (
	"fmt"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"ITINERARY_BACK-END/internal/itinerary"
)

func addList(topLevel *cobra.Command) {
	fo := &FileOptions{}
	vo := &ViewOptions{}
	var rate float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the destinations with their sequence numbers",
		Example: `
itinctl list -f trip.json
itinctl list -f trip.json --date 2024-04-02 --sort budget
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

			seq := itinerary.SequenceNumbers(view)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("#"), bold("NAME"), bold("DATE"), bold("TIME"), bold("TYPE"), bold("MODE"), bold("BUDGET"))
			for i, d := range view {
				tbl.AddRow(seq[i], d.Name, d.Date, d.Time, d.Type, d.TravelMode, formatAmount(d.Budget))
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, tbl)
			total := itinerary.TotalBudget(view)
			_, _ = fmt.Fprintf(out, "\n%s %s (%s)\n", bold("Total:"), formatAmount(total),
				faint(fmt.Sprintf("~%.2f at %g", itinerary.ConvertBudget(total, rate), rate)))
			return nil
		},
	}

	AddFileArgs(cmd, fo)
	AddViewArgs(cmd, vo)
	cmd.Flags().Float64Var(&rate, "rate", itinerary.DefaultExchangeRate,
		"Exchange rate for the converted total.")
	topLevel.AddCommand(cmd)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
