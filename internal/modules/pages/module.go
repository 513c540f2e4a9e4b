package pages

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/waypoint/internal/module"
	"github.com/nfrund/waypoint/pathreg"
)

// Module serves the static site pages and contributes them to the shared
// navigation lists.
type Module struct {
	module.BaseModule
	appName string
	handler *Handler
}

func New(appName string) *Module {
	return &Module{appName: appName}
}

func (m *Module) Name() string {
	return "pages"
}

func (m *Module) Register(paths *pathreg.Registry) error {
	paths.Register("home",
		func(args ...any) string { return "/" },
		"Home",
		pathreg.WithNavs("main", "footer"))

	paths.Register("about",
		func(args ...any) string { return "/about" },
		"About",
		pathreg.WithNavs("main", "footer"))

	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, paths *pathreg.Registry) error {
	m.handler = NewHandler(m.appName, paths)
	group.GET("/", m.handler.HomeGet)
	group.GET("/about", m.handler.AboutGet)
	return nil
}
