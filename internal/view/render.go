package view

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/waypoint/pathreg"

	cmp "maragu.dev/gomponents"
)

// Render writes a gomponents node as the HTML response body.
func Render(c echo.Context, status int, node cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return node.Render(c.Response())
}

// Shell builds the standard page chrome: main nav and footer nav are pulled
// from the path registry at render time, so every registered module's links
// appear without the handler knowing about them.
func Shell(appName string, paths *pathreg.Registry, title string, body ...cmp.Node) cmp.Node {
	return Page(
		title,
		appName,
		NavBar(Resolve(paths.NavLinks("main"))),
		FooterNav(Resolve(paths.NavLinks("footer"))),
		body...,
	)
}
