// Package bridge implements the host shell bridge transports and the probe
// that decides, once, which of them is available.
package bridge

import (
	"context"
	"time"

	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ ports.Bridge = (*GRPCBridge)(nil)

// GRPCBridge implements ports.Bridge over the v2 protocol.
type GRPCBridge struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// DialSocket connects to the v2 bridge on the Unix socket at path.
func DialSocket(path string, timeout time.Duration) (*GRPCBridge, error) {
	return Dial("unix://"+path, timeout)
}

// Dial connects to the v2 bridge at target.
// grpc.NewClient returns immediately; the connection is made on the first call.
func Dial(target string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCBridge, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBridgeDialFailed.Error()), "target", target)
	}

	return &GRPCBridge{
		conn:    conn,
		timeout: timeout,
	}, nil
}

// Invoke implements ports.Bridge.
func (b *GRPCBridge) Invoke(ctx context.Context, command string, args map[string]any) (any, error) {
	req, err := encodeRequest(command, args)
	if err != nil {
		return nil, err
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	resp := new(structpb.Value)
	if err := b.conn.Invoke(ctx, invokeMethod, req, resp); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBridgeCallFailed.Error()), "command", command)
	}
	return resp.AsInterface(), nil
}

// Close implements ports.Bridge.
func (b *GRPCBridge) Close() error {
	return b.conn.Close()
}
