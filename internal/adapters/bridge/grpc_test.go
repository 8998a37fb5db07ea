package bridge_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconkit/internal/adapters/bridge"
	"go.trai.ch/iconkit/internal/core/domain"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type hostFunc func(ctx context.Context, command string, args map[string]any) (any, error)

func (f hostFunc) Invoke(ctx context.Context, command string, args map[string]any) (any, error) {
	return f(ctx, command, args)
}

func startGRPCHost(t *testing.T, host bridge.Host, timeout time.Duration) *bridge.GRPCBridge {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	bridge.RegisterHost(srv, host)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	b, err := bridge.Dial("passthrough:///bufnet", timeout,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestGRPCBridge_Invoke(t *testing.T) {
	var gotCommand string
	var gotArgs map[string]any

	host := hostFunc(func(_ context.Context, command string, args map[string]any) (any, error) {
		gotCommand, gotArgs = command, args
		switch command {
		case domain.CmdGetIconPath:
			return "/opt/icons/" + args[domain.ArgIconName].(string), nil
		case domain.CmdListAvailableIcons:
			return []string{"icon.ico", "icon.png"}, nil
		case domain.CmdSetBadge:
			return nil, nil
		default:
			return nil, status.Error(codes.Unimplemented, "unknown command")
		}
	})
	b := startGRPCHost(t, host, time.Second)

	t.Run("string result with args", func(t *testing.T) {
		got, err := b.Invoke(t.Context(), domain.CmdGetIconPath, map[string]any{domain.ArgIconName: "icon.ico"})
		require.NoError(t, err)
		assert.Equal(t, "/opt/icons/icon.ico", got)
		assert.Equal(t, domain.CmdGetIconPath, gotCommand)
	})

	t.Run("list result without args", func(t *testing.T) {
		got, err := b.Invoke(t.Context(), domain.CmdListAvailableIcons, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{"icon.ico", "icon.png"}, got)
		assert.Nil(t, gotArgs)
	})

	t.Run("integer args arrive as numbers", func(t *testing.T) {
		got, err := b.Invoke(t.Context(), domain.CmdSetBadge, map[string]any{domain.ArgCount: 3})
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.InDelta(t, 3, gotArgs[domain.ArgCount], 0)
	})

	t.Run("host errors surface as call failures", func(t *testing.T) {
		_, err := b.Invoke(t.Context(), "unknown", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrBridgeCallFailed.Error())
		assert.Equal(t, codes.Unimplemented, status.Code(unwrapAll(err)))
	})
}

func TestGRPCBridge_PlainHostError(t *testing.T) {
	host := hostFunc(func(context.Context, string, map[string]any) (any, error) {
		return nil, assert.AnError
	})
	b := startGRPCHost(t, host, time.Second)

	_, err := b.Invoke(t.Context(), domain.CmdGetIconPath, map[string]any{domain.ArgIconName: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), assert.AnError.Error())
}

func TestGRPCBridge_Timeout(t *testing.T) {
	host := hostFunc(func(ctx context.Context, _ string, _ map[string]any) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	b := startGRPCHost(t, host, 50*time.Millisecond)

	_, err := b.Invoke(t.Context(), domain.CmdListAvailableIcons, nil)
	require.Error(t, err)
	assert.Equal(t, codes.DeadlineExceeded, status.Code(unwrapAll(err)))
}

func TestGRPCBridge_UnencodableArgs(t *testing.T) {
	b := startGRPCHost(t, hostFunc(func(context.Context, string, map[string]any) (any, error) {
		return nil, nil
	}), time.Second)

	_, err := b.Invoke(t.Context(), domain.CmdSetBadge, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode bridge request")
}

// unwrapAll returns the innermost error of a chain.
func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}
