// Package clients builds a gateway.Gateway for the configured protocol.
package clients

import (
	"fmt"
	"log/slog"

	"github.com/gatewayperf/gatewayperf/internal/clients/grpcgw"
	"github.com/gatewayperf/gatewayperf/internal/clients/httpgw"
	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
)

// Options are shared by both transports. Zero values use the client defaults.
type Options struct {
	Logger *slog.Logger
	// Recorder turns the client into a load-test client.
	Recorder metrics.Recorder
}

// New returns the gateway over protocol, configured from cfg.
func New(protocol gateway.Protocol, cfg *config.Config, opts Options) (gateway.Gateway, error) {
	switch protocol {
	case gateway.ProtocolHTTP:
		var httpOpts []httpgw.Option
		if opts.Logger != nil {
			httpOpts = append(httpOpts, httpgw.WithLogger(opts.Logger))
		}
		if opts.Recorder != nil {
			httpOpts = append(httpOpts, httpgw.WithRecorder(opts.Recorder))
		}
		c, err := httpgw.New(cfg.GatewayHTTPClient, httpOpts...)
		if err != nil {
			return nil, err
		}
		return httpgw.NewGateway(c), nil

	case gateway.ProtocolGRPC:
		var grpcOpts []grpcgw.Option
		if opts.Logger != nil {
			grpcOpts = append(grpcOpts, grpcgw.WithLogger(opts.Logger))
		}
		if opts.Recorder != nil {
			grpcOpts = append(grpcOpts, grpcgw.WithRecorder(opts.Recorder))
		}
		c, err := grpcgw.New(cfg.GatewayGRPCClient, grpcOpts...)
		if err != nil {
			return nil, err
		}
		return grpcgw.NewGateway(c), nil
	}
	return nil, fmt.Errorf("%w: %q", gateway.ErrUnknownProtocol, protocol)
}
