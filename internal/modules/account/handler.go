package account

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/waypoint/internal/view"
	"github.com/nfrund/waypoint/pathreg"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Handler renders the account pages.
type Handler struct {
	appName string
	paths   *pathreg.Registry
}

func NewHandler(appName string, paths *pathreg.Registry) *Handler {
	return &Handler{appName: appName, paths: paths}
}

// ProfileGet handles GET /user/:id.
func (h *Handler) ProfileGet(c echo.Context) error {
	id := c.Param("id")

	// Everything under the "user" group belongs in the sidebar of this
	// page. Each path function gets the current user ID; functions that
	// don't take arguments ignore it.
	related := view.ResolveArgs(h.paths.GroupPaths(GroupName), func(pathreg.NavLink) []any {
		return []any{id}
	})

	return view.Render(c, http.StatusOK, view.Shell(h.appName, h.paths, "Profile",
		g.H1(g.Class("text-4xl font-extrabold text-indigo-700 mb-4"), cmp.Text("Profile: "+id)),
		g.H2(g.Class("text-xl font-bold mt-8 mb-2"), cmp.Text("Your account")),
		g.Ul(
			g.Class("list-disc pl-6 space-y-1"),
			cmp.Map(related, func(item view.NavItem) cmp.Node {
				return g.Li(g.A(g.Class("text-indigo-700 hover:underline"), g.Href(item.Href), cmp.Text(item.Label)))
			}),
		),
	))
}

// SettingsGet handles GET /settings.
func (h *Handler) SettingsGet(c echo.Context) error {
	profileHref := "/"
	if link, ok := h.paths.Get("account.profile"); ok {
		profileHref = link.Path("me")
	}

	return view.Render(c, http.StatusOK, view.Shell(h.appName, h.paths, "Settings",
		g.H1(g.Class("text-4xl font-extrabold text-indigo-700 mb-4"), cmp.Text("Settings")),
		g.P(
			g.Class("text-gray-700"),
			cmp.Text("Nothing to configure yet. Back to your "),
			g.A(g.Class("text-indigo-700 hover:underline"), g.Href(profileHref), cmp.Text("profile")),
			cmp.Text("."),
		),
	))
}
