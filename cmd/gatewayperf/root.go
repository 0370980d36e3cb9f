package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gatewayperf/gatewayperf/internal/clients"
	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/logging"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
)

// app carries what every subcommand needs once the root flags are parsed.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	protocol gateway.Protocol
}

func newRootCmd() *cobra.Command {
	a := &app{protocol: gateway.ProtocolHTTP}

	root := &cobra.Command{
		Use:           "gatewayperf",
		Short:         "Seed, load test and demo the banking gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().VarP(&a.protocol, "protocol", "p", "gateway transport: http or grpc")

	root.AddCommand(
		newSeedCmd(a),
		newLoadCmd(a),
		newDemoCmd(a),
		newScenariosCmd(),
	)
	return root
}

// setup loads the configuration and the logger. Listing commands skip it.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cfg, cmd.ErrOrStderr())
	return nil
}

func (a *app) dial(rec metrics.Recorder) (gateway.Gateway, error) {
	return clients.New(a.protocol, a.cfg, clients.Options{Logger: a.logger, Recorder: rec})
}
