package server

import (
	"github.com/nfrund/waypoint/internal/config"
	"github.com/nfrund/waypoint/internal/module"
	"github.com/nfrund/waypoint/internal/modules/account"
	"github.com/nfrund/waypoint/internal/modules/pages"
)

// AppModules returns the application's modules in boot order. The CLI uses
// the same list to populate a registry without starting the server.
func AppModules(cfg *config.Config) []module.Module {
	return []module.Module{
		pages.New(cfg.AppName),
		account.New(cfg.AppName),
	}
}
