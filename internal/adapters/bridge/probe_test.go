package bridge_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconkit/internal/adapters/bridge"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/iconkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestProbe_FirstAvailableWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	first := mocks.NewMockBridge(ctrl)
	second := mocks.NewMockBridge(ctrl)
	var opened []string

	location := func(name string, b ports.Bridge, err error) bridge.Location {
		return bridge.Location{
			Name:    name,
			Variant: domain.VariantV2,
			Open: func(context.Context) (ports.Bridge, error) {
				opened = append(opened, name)
				return b, err
			},
		}
	}

	capability := bridge.Probe(t.Context(), log,
		location("missing", nil, nil),
		location("broken", nil, assert.AnError),
		location("first", first, nil),
		location("second", second, nil),
	)

	require.True(t, capability.Available())
	assert.Same(t, first, capability.Bridge)
	assert.Equal(t, "first", capability.Source)
	assert.Equal(t, domain.VariantV2, capability.Variant)
	assert.Equal(t, []string{"missing", "broken", "first"}, opened)
}

func TestProbe_NothingFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	regular := filepath.Join(dir, "not-a-socket")
	require.NoError(t, os.WriteFile(regular, nil, 0o600))

	capability := bridge.Probe(t.Context(), log,
		bridge.SocketLocation(filepath.Join(dir, "missing.sock"), time.Second),
		bridge.SocketLocation(regular, time.Second),
		bridge.LegacyLocation("", time.Second),
	)

	assert.False(t, capability.Available())
	assert.Nil(t, capability.Bridge)
	assert.Empty(t, capability.Variant)
}

func TestSocketLocation_Present(t *testing.T) {
	dir, err := os.MkdirTemp("", "ik")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "b.sock")
	lis, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	b, err := bridge.SocketLocation(path, time.Second).Open(t.Context())
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.IsType(t, &bridge.GRPCBridge{}, b)
	assert.NoError(t, b.Close())
}

func TestLegacyLocation(t *testing.T) {
	loc := bridge.LegacyLocation("ws://127.0.0.1:9223/bridge", time.Second)
	assert.Equal(t, domain.VariantV1, loc.Variant)

	b, err := loc.Open(t.Context())
	require.NoError(t, err)
	assert.IsType(t, &bridge.LegacyBridge{}, b)
	assert.NoError(t, b.Close())
}

func TestDefaultLocations(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	wellKnown := "unix://" + filepath.Join("/run/user/1000", "hostshell", "bridge.sock")

	t.Run("configured socket first", func(t *testing.T) {
		locs := bridge.DefaultLocations("/tmp/custom.sock", "ws://localhost:1/b", time.Second)
		require.Len(t, locs, 3)
		assert.Equal(t, "unix:///tmp/custom.sock", locs[0].Name)
		assert.Equal(t, wellKnown, locs[1].Name)
		assert.Equal(t, "ws://localhost:1/b", locs[2].Name)
		assert.Equal(t, domain.VariantV1, locs[2].Variant)
	})

	t.Run("configured socket equal to well-known is probed once", func(t *testing.T) {
		locs := bridge.DefaultLocations(filepath.Join("/run/user/1000", "hostshell", "bridge.sock"), "", time.Second)
		require.Len(t, locs, 2)
		assert.Equal(t, wellKnown, locs[0].Name)
	})
}
