package ports

import "context"

//go:generate mockgen -source=bridge.go -destination=mocks/mock_bridge.go -package=mocks

// Bridge invokes named commands in the host shell process.
type Bridge interface {
	// Invoke sends command with args and returns the decoded result.
	// A nil args map sends no arguments.
	Invoke(ctx context.Context, command string, args map[string]any) (any, error)

	// Close releases the transport.
	Close() error
}

// Capability is the outcome of probing for a host bridge. It is decided once
// and never changes afterwards.
type Capability struct {
	// Bridge is nil when no host bridge was found.
	Bridge Bridge
	// Variant is the protocol generation of the bridge, "v2" or "v1".
	Variant string
	// Source describes where the bridge was found.
	Source string
}

// Available reports whether a bridge was found.
func (c Capability) Available() bool {
	return c.Bridge != nil
}
