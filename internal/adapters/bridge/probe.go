package bridge

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Location is one place a host bridge may be found.
type Location struct {
	// Name describes the location in diagnostics and in Capability.Source.
	Name string
	// Variant is the protocol generation served there.
	Variant string
	// Open returns the bridge, or nil when nothing is present at the location.
	Open func(ctx context.Context) (ports.Bridge, error)
}

// Probe returns the capability of the first location that yields a bridge.
// Locations that fail are skipped. When none yields one, Probe logs a warning
// and returns an absent capability.
func Probe(ctx context.Context, log ports.Logger, locations ...Location) ports.Capability {
	for _, loc := range locations {
		b, err := loc.Open(ctx)
		if err != nil {
			log.Debug("bridge location unusable", "location", loc.Name, "error", err.Error())
			continue
		}
		if b == nil {
			continue
		}

		log.Debug("bridge found", "variant", loc.Variant, "location", loc.Name)
		return ports.Capability{
			Bridge:  b,
			Variant: loc.Variant,
			Source:  loc.Name,
		}
	}

	log.Warn("host bridge not available, icon resolution is disabled")
	return ports.Capability{}
}

// SocketLocation looks for a v2 bridge listening on the Unix socket at path.
func SocketLocation(path string, timeout time.Duration) Location {
	return Location{
		Name:    "unix://" + path,
		Variant: domain.VariantV2,
		Open: func(_ context.Context) (ports.Bridge, error) {
			info, err := os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to stat bridge socket"), "path", path)
			}
			if info.Mode()&fs.ModeSocket == 0 {
				return nil, zerr.With(zerr.New("bridge path is not a socket"), "path", path)
			}
			return DialSocket(path, timeout)
		},
	}
}

// LegacyLocation uses the v1 bridge at url. An empty url yields nothing.
func LegacyLocation(url string, timeout time.Duration) Location {
	return Location{
		Name:    url,
		Variant: domain.VariantV1,
		Open: func(_ context.Context) (ports.Bridge, error) {
			if url == "" {
				return nil, nil
			}
			return NewLegacyBridge(url, timeout), nil
		},
	}
}

// DefaultLocations returns the probe order: the configured socket, the
// well-known socket, then the legacy url.
func DefaultLocations(socket, legacyURL string, timeout time.Duration) []Location {
	var locations []Location
	if socket != "" {
		locations = append(locations, SocketLocation(socket, timeout))
	}
	if wellKnown := domain.DefaultBridgeSocketPath(); wellKnown != socket {
		locations = append(locations, SocketLocation(wellKnown, timeout))
	}
	return append(locations, LegacyLocation(legacyURL, timeout))
}
