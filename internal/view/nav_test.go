package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nfrund/waypoint/pathreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmp "maragu.dev/gomponents"
)

func renderToString(t *testing.T, node cmp.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}

func TestNavBar(t *testing.T) {
	html := renderToString(t, NavBar([]NavItem{
		{Href: "/", Label: "Home"},
		{Href: "/about", Label: "About"},
	}))

	assert.Contains(t, html, `href="/"`)
	assert.Contains(t, html, `href="/about"`)
	assert.Contains(t, html, ">Home</a>")
	assert.Contains(t, html, ">About</a>")
	assert.Contains(t, html, `hx-boost="true"`)
}

func TestResolve(t *testing.T) {
	r := pathreg.New()
	r.Register("home", func(args ...any) string { return "/" }, "Home", pathreg.WithNavs("main"))
	r.Register("profile", func(args ...any) string {
		return fmt.Sprintf("/user/%v", args[0])
	}, "Profile", pathreg.WithNavs("main"), pathreg.WithGroup("user"))

	t.Run("zero-argument resolution", func(t *testing.T) {
		items := Resolve(r.NavLinks("main")[:1])
		require.Len(t, items, 1)
		assert.Equal(t, NavItem{Href: "/", Label: "Home"}, items[0])
	})

	t.Run("per-link arguments", func(t *testing.T) {
		items := ResolveArgs(r.NavLinks("main"), func(l pathreg.NavLink) []any {
			if l.Group == "user" {
				return []any{42}
			}
			return nil
		})
		require.Len(t, items, 2)
		assert.Equal(t, "/", items[0].Href)
		assert.Equal(t, "/user/42", items[1].Href)
	})
}

func TestShell(t *testing.T) {
	r := pathreg.New()
	r.Register("home", func(args ...any) string { return "/" }, "Home",
		pathreg.WithNavs("main", "footer"))
	r.Register("about", func(args ...any) string { return "/about" }, "About",
		pathreg.WithNavs("footer"))

	html := renderToString(t, Shell("Testapp", r, "About", cmp.Text("hello")))

	assert.Contains(t, html, "<title>About - Testapp</title>")
	assert.Contains(t, html, "hello")
	// About is footer-only, so exactly one nav renders it.
	assert.Equal(t, 1, strings.Count(html, ">About</a>"))
	assert.Equal(t, 2, strings.Count(html, ">Home</a>"))
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "About - Waypoint", PageTitle("About", "Waypoint"))
	assert.Equal(t, "Waypoint", PageTitle("", "Waypoint"))
}
