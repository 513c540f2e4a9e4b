package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/waypoint/internal/view"
	"github.com/nfrund/waypoint/pathreg"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Handler renders the static pages.
type Handler struct {
	appName string
	paths   *pathreg.Registry
}

func NewHandler(appName string, paths *pathreg.Registry) *Handler {
	return &Handler{appName: appName, paths: paths}
}

// HomeGet handles GET /.
func (h *Handler) HomeGet(c echo.Context) error {
	return view.Render(c, http.StatusOK, view.Shell(h.appName, h.paths, "",
		g.H1(g.Class("text-4xl font-extrabold text-indigo-700 mb-4"), cmp.Text("Welcome to "+h.appName)),
		g.P(
			g.Class("text-gray-700 leading-relaxed"),
			cmp.Text("Every link on this page was generated from the path registry. Modules register their paths once at startup; the layout queries the registry when it renders."),
		),
	))
}

// AboutGet handles GET /about.
func (h *Handler) AboutGet(c echo.Context) error {
	return view.Render(c, http.StatusOK, view.Shell(h.appName, h.paths, "About",
		g.H1(g.Class("text-4xl font-extrabold text-indigo-700 mb-4"), cmp.Text("About")),
		g.P(
			g.Class("text-gray-700 leading-relaxed"),
			cmp.Text(h.appName+" keeps routing and navigation decoupled: a route's URL shape lives in exactly one place, the path function its module registered."),
		),
	))
}
