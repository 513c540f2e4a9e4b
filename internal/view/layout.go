package view

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// PageTitle handles the conditional logic for the page title.
func PageTitle(title, appName string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

// Page wraps body content in the shared HTML document layout, with the main
// nav above the content and the footer nav below it.
func Page(title, appName string, nav, footer cmp.Node, body ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(PageTitle(title, appName))),
			),
			g.Body(
				g.Class("min-h-screen bg-gray-50 text-gray-900"),
				g.Header(g.Class("border-b bg-white shadow-sm"), nav),
				g.Main(g.Class("container mx-auto p-8"), cmp.Group(body)),
				g.Footer(g.Class("border-t bg-white text-sm text-gray-500"), footer),
			),
		),
	)
}
