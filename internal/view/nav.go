package view

import (
	"github.com/nfrund/waypoint/pathreg"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// NavItem is one resolved link: the href has already been generated by the
// entry's path function, with whatever arguments the caller chose.
type NavItem struct {
	Href  string
	Label string
}

// Resolve turns NavLink projections into renderable items. Links are invoked
// with no arguments; use ResolveArgs when some paths need them.
func Resolve(links []pathreg.NavLink) []NavItem {
	return ResolveArgs(links, nil)
}

// ResolveArgs turns NavLink projections into renderable items, asking argsFor
// which arguments to pass each link's path function. A nil argsFor (or a nil
// return) means no arguments.
func ResolveArgs(links []pathreg.NavLink, argsFor func(pathreg.NavLink) []any) []NavItem {
	items := make([]NavItem, 0, len(links))
	for _, link := range links {
		var args []any
		if argsFor != nil {
			args = argsFor(link)
		}
		items = append(items, NavItem{
			Href:  link.Path(args...),
			Label: link.Label,
		})
	}
	return items
}

// NavBar renders the main navigation as a horizontal list of boosted links.
func NavBar(items []NavItem) cmp.Node {
	return g.Nav(
		g.Class("container mx-auto flex gap-6 p-4"),
		hx.Boost("true"),
		cmp.Map(items, func(item NavItem) cmp.Node {
			return g.A(
				g.Class("font-medium text-indigo-700 hover:underline"),
				g.Href(item.Href),
				cmp.Text(item.Label),
			)
		}),
	)
}

// FooterNav renders a compact footer link list.
func FooterNav(items []NavItem) cmp.Node {
	return g.Nav(
		g.Class("container mx-auto flex gap-4 p-4"),
		cmp.Map(items, func(item NavItem) cmp.Node {
			return g.A(g.Href(item.Href), cmp.Text(item.Label))
		}),
	)
}
