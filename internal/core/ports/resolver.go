package ports

import "context"

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

// IconResolver resolves icon and badge names to file paths on the host.
type IconResolver interface {
	// ResolvePath returns the file path of the named icon.
	ResolvePath(ctx context.Context, name string) (string, error)

	// ResolveBadgePath returns the file path of the badge icon for count.
	ResolveBadgePath(ctx context.Context, count int) (string, error)
}

// BadgeSetter updates the taskbar badge of the host window.
type BadgeSetter interface {
	// SetBadge shows count on the taskbar badge. Zero clears it.
	SetBadge(ctx context.Context, count int) error
}
