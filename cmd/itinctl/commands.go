package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	bold      = color.New(color.Bold).SprintFunc()
	underline = color.New(color.Underline, color.Bold).SprintFunc()
	faint     = color.New(color.Faint).SprintFunc()
)

// New builds the itinctl root command
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "itinctl",
		Short:         "Inspect an itinerary file: numbering, legs and day groups.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand on topLevel
func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addLegs(topLevel)
	addDates(topLevel)
}
