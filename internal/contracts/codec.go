// Package contracts holds the gRPC contract of the gateway: messages encoded on the
// protobuf wire format, client stubs, server interfaces and service descriptors for
// the users, accounts, cards, operations and documents services.
package contracts

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
)

// ErrNotMessage is returned by Codec for values that are not contract messages.
var ErrNotMessage = errors.New("value is not a contract message")

// CodecName is the content-subtype the gateway speaks.
const CodecName = "proto"

// Codec encodes contract messages. It is forced on both ends of the connection.
type Codec struct{}

// Marshal encodes v.
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("marshal %T: %w", v, ErrNotMessage)
	}
	return m.Marshal()
}

// Unmarshal decodes data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("unmarshal %T: %w", v, ErrNotMessage)
	}
	return m.Unmarshal(data)
}

// Name returns CodecName.
func (Codec) Name() string { return CodecName }

// DialOption forces Codec on every call of a client connection.
func DialOption() grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{}))
}

// ServerOption forces Codec on a server.
func ServerOption() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}

func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts ...grpc.CallOption) (*Resp, error) {
	out := PResp(new(Resp))
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func unary[Req any, PReq interface {
	*Req
	Message
}](service, method string, call func(srv any, ctx context.Context, in PReq) (any, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv, ctx, req.(PReq))
			})
		},
	}
}
