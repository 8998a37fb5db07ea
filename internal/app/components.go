package app

import (
	"go.trai.ch/iconkit/internal/core/ports"
)

// Components holds the application components.
type Components struct {
	App        *App
	Logger     ports.Logger
	Capability ports.Capability
}

// Close releases the host bridge, if one was found.
func (c *Components) Close() error {
	if !c.Capability.Available() {
		return nil
	}
	return c.Capability.Bridge.Close()
}
