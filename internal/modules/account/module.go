package account

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/waypoint/internal/module"
	"github.com/nfrund/waypoint/pathreg"
)

// GroupName tags every account path so other modules can collect them with
// a single GroupPaths query.
const GroupName = "user"

// Module serves the user-facing account pages.
type Module struct {
	module.BaseModule
	appName string
	handler *Handler
}

func New(appName string) *Module {
	return &Module{appName: appName}
}

func (m *Module) Name() string {
	return "account"
}

func (m *Module) Register(paths *pathreg.Registry) error {
	// With no argument the profile path falls back to the "me" alias, so
	// nav bars can link it without knowing a user ID.
	paths.Register("account.profile",
		func(args ...any) string {
			if len(args) == 0 {
				return "/user/me"
			}
			return fmt.Sprintf("/user/%v", args[0])
		},
		"Profile",
		pathreg.WithNavs("main"),
		pathreg.WithGroup(GroupName))

	paths.Register("account.settings",
		func(args ...any) string { return "/settings" },
		"Settings",
		pathreg.WithNavs("footer"),
		pathreg.WithGroup(GroupName))

	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, paths *pathreg.Registry) error {
	m.handler = NewHandler(m.appName, paths)
	group.GET("/user/:id", m.handler.ProfileGet)
	group.GET("/settings", m.handler.SettingsGet)
	return nil
}
