package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "iconkit.yaml"

	// BridgeDirName is the directory the host shell creates under the runtime dir.
	BridgeDirName = "hostshell"

	// BridgeSocketName is the name of the host shell's bridge socket.
	BridgeSocketName = "bridge.sock"

	// DefaultCallTimeout bounds a single bridge call.
	DefaultCallTimeout = 10 * time.Second

	// DefaultPreloadConcurrency bounds concurrent resolutions during preload.
	DefaultPreloadConcurrency = 8

	// DefaultTitlePattern extracts the unread count from a window title like "Inbox (3)".
	DefaultTitlePattern = `\((\d+)\)`

	// TitleDebounce coalesces rapid writes to a watched title file.
	TitleDebounce = 50 * time.Millisecond
)

// DefaultPreloadIcons returns the icons warmed by every preload.
func DefaultPreloadIcons() []string {
	return []string{
		"icon.ico",
		"icon.png",
		"badges/1.ico",
		"badges/2.ico",
		"badges/3.ico",
		"badges/9+.ico",
	}
}

// DefaultBridgeSocketPath returns the well-known bridge socket location.
// It joins $XDG_RUNTIME_DIR (or the temp dir), hostshell and bridge.sock.
func DefaultBridgeSocketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, BridgeDirName, BridgeSocketName)
}
