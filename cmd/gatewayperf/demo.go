package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gatewayperf/gatewayperf/internal/demos"
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <flow>",
		Short: "Run a demo flow and print every gateway response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			gw, err := a.dial(nil)
			if err != nil {
				return err
			}
			defer gw.Close()

			return demos.New(gw, cmd.OutOrStdout()).Run(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List demo flows",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Flow", "Description"})
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			for _, f := range demos.Flows() {
				table.Append([]string{f.Name, f.Description})
			}
			table.Render()
		},
	})
	return cmd
}
