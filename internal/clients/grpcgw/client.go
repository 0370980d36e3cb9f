// Package grpcgw provides typed clients for the gateway's gRPC services.
package grpcgw

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/contracts"
	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
)

// Client owns one connection to the gateway.
type Client struct {
	conn   *grpc.ClientConn
	fake   *fakers.Fake
	logger *slog.Logger
}

type options struct {
	fake        *fakers.Fake
	logger      *slog.Logger
	recorder    metrics.Recorder
	target      string
	dialOptions []grpc.DialOption
}

// Option configures a Client.
type Option func(*options)

// WithFaker sets the generator used by request builders.
func WithFaker(fake *fakers.Fake) Option {
	return func(o *options) { o.fake = fake }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRecorder reports every call to rec under type GRPC. This is the load-test client.
func WithRecorder(rec metrics.Recorder) Option {
	return func(o *options) { o.recorder = rec }
}

// WithTarget overrides the dial target derived from config.
func WithTarget(target string) Option {
	return func(o *options) { o.target = target }
}

// WithDialOptions appends raw dial options, e.g. a bufconn dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOptions = append(o.dialOptions, opts...) }
}

// New connects to cfg.ClientURL() without TLS. Calls without a deadline get cfg.Timeout.
func New(cfg config.GRPCClientConfig, opts ...Option) (*Client, error) {
	o := options{fake: fakers.Default, logger: slog.Default(), target: cfg.ClientURL()}
	for _, opt := range opts {
		opt(&o)
	}

	interceptors := []grpc.UnaryClientInterceptor{timeoutInterceptor(cfg.Timeout)}
	if o.recorder != nil {
		interceptors = append(interceptors, statsInterceptor(o.recorder, time.Now))
	}

	dialOptions := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		contracts.DialOption(),
		grpc.WithChainUnaryInterceptor(interceptors...),
	}, o.dialOptions...)

	conn, err := grpc.NewClient(o.target, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial gateway %s: %w", o.target, err)
	}

	c := &Client{
		conn:   conn,
		fake:   o.fake,
		logger: o.logger.With("component", "grpcgw"),
	}
	c.logger.Debug("gateway connection created", "target", o.target, "timeout", cfg.Timeout)
	return c, nil
}

// Conn exposes the underlying connection.
func (c *Client) Conn() *grpc.ClientConn { return c.conn }

// Close tears down the connection.
func (c *Client) Close() error { return c.conn.Close() }

func timeoutInterceptor(timeout time.Duration) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if _, ok := ctx.Deadline(); !ok && timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func statsInterceptor(rec metrics.Recorder, now func() time.Time) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		ev := metrics.Request{
			Type:         metrics.TypeGRPC,
			Name:         method,
			ResponseTime: now().Sub(start),
			Err:          err,
		}
		if err == nil {
			if m, ok := reply.(contracts.Message); ok {
				if data, merr := m.Marshal(); merr == nil {
					ev.ResponseLength = int64(len(data))
				}
			}
		}
		rec.RecordRequest(ev)
		return err
	}
}
