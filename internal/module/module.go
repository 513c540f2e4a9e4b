package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/waypoint/pathreg"
)

// Module defines the contract for a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during application startup so the module can add
	// its paths to the shared registry. All registrations complete before
	// any module boots, so path lookups across module boundaries are safe
	// from Boot onward.
	Register(paths *pathreg.Registry) error

	// Boot is called after all modules have registered their paths.
	// This is the phase for setting up routes.
	Boot(ctx context.Context, router *echo.Group, paths *pathreg.Registry) error

	// Shutdown is called during graceful application shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides default no-op implementations for Module methods.
// Modules can embed this to avoid implementing methods they don't need.
type BaseModule struct{}

func (m *BaseModule) Register(paths *pathreg.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, paths *pathreg.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
