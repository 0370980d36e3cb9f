package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/logging"
	"github.com/gatewayperf/gatewayperf/internal/seeds"
)

func newSeedCmd(a *app) *cobra.Command {
	var users int

	cmd := &cobra.Command{
		Use:   "seed <scenario>",
		Short: "Create the users a load scenario replays and store the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			scenario, err := seeds.Lookup(args[0])
			if err != nil {
				return err
			}
			if users > 0 {
				scenario.Plan.Users.Count = users
			}

			ctx := cmd.Context()
			store, err := seeds.OpenStore(ctx, a.cfg.Seeds)
			if err != nil {
				a.logger.Error("failed to open seeds store",
					"store", a.cfg.Seeds.Store,
					"error", logging.SanitizeError(err, a.cfg.Seeds.DatabaseURL, a.cfg.Seeds.RedisURL),
				)
				return fmt.Errorf("open %s seeds store", a.cfg.Seeds.Store)
			}
			defer store.Close()

			gw, err := a.dial(nil)
			if err != nil {
				return err
			}
			defer gw.Close()

			result, err := scenario.Build(ctx, seeds.NewBuilder(gw, a.logger), store)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users for %s into the %s store\n",
				result.UserCount(), scenario.Name, storeName(a.cfg.Seeds))
			return nil
		},
	}
	cmd.Flags().IntVar(&users, "users", 0, "override the number of users in the plan")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List seeding scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Scenario", "Users", "Calls"})
			table.SetAutoFormatHeaders(false)
			for _, name := range seeds.Names() {
				s, _ := seeds.Lookup(name)
				table.Append([]string{name, strconv.Itoa(s.Plan.Users.Count), strconv.Itoa(s.Plan.Calls())})
			}
			table.Render()
		},
	})
	return cmd
}

func storeName(cfg config.SeedsConfig) string {
	if cfg.Store == "" {
		return config.SeedsStoreFile
	}
	return cfg.Store
}
