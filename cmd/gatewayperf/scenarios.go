package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gatewayperf/gatewayperf/internal/scenarios"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List load scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Scenario", "Seeds", "Description"})
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			for _, s := range scenarios.All() {
				table.Append([]string{s.Name, s.Seeds, s.Description})
			}
			table.Render()
		},
	}
}
