package pathreg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticPath(path string) PathFunc {
	return func(args ...any) string { return path }
}

func TestRegisterAndGet(t *testing.T) {
	r := New()

	r.Register("home", staticPath("/"), "Home", WithNavs("main"))

	t.Run("round trip", func(t *testing.T) {
		link, ok := r.Get("home")
		require.True(t, ok)
		assert.Equal(t, "Home", link.Label)
		assert.Empty(t, link.Group)
		assert.Equal(t, "/", link.Path())
	})

	t.Run("miss returns false, not an error", func(t *testing.T) {
		link, ok := r.Get("nonexistent")
		assert.False(t, ok)
		assert.Zero(t, link)
	})

	t.Run("path function arguments pass through untouched", func(t *testing.T) {
		r.Register("profile", func(args ...any) string {
			return fmt.Sprintf("/user/%v", args[0])
		}, "Profile", WithGroup("user"))

		link, ok := r.Get("profile")
		require.True(t, ok)
		assert.Equal(t, "/user/42", link.Path("42"))
		assert.Equal(t, "/user/7", link.Path(7))
	})
}

func TestRegisterOverwrite(t *testing.T) {
	r := New()

	r.Register("home", staticPath("/old"), "Old Home", WithNavs("main"))
	r.Register("docs", staticPath("/docs"), "Docs", WithNavs("main"))
	r.Register("home", staticPath("/"), "Home", WithNavs("footer"))

	t.Run("last write wins", func(t *testing.T) {
		link, ok := r.Get("home")
		require.True(t, ok)
		assert.Equal(t, "Home", link.Label)
		assert.Equal(t, "/", link.Path())
	})

	t.Run("exactly one entry remains", func(t *testing.T) {
		all := r.All()
		assert.Len(t, all, 2)
		assert.Equal(t, []string{"footer"}, all["home"].Navs)
	})

	t.Run("no merge with the previous registration", func(t *testing.T) {
		assert.Empty(t, r.NavLinks("main"), "overwritten entry should no longer be in main")
	})

	t.Run("overwrite keeps the original order slot", func(t *testing.T) {
		assert.Equal(t, []string{"home", "docs"}, r.Keys())
	})
}

func TestNavLinks(t *testing.T) {
	r := New()
	r.Register("home", staticPath("/"), "Home", WithNavs("main", "footer"))
	r.Register("about", staticPath("/about"), "About", WithNavs("footer"))
	r.Register("admin", staticPath("/admin"), "Admin")

	t.Run("returns exactly the members, in registration order", func(t *testing.T) {
		links := r.NavLinks("footer")
		require.Len(t, links, 2)
		assert.Equal(t, "Home", links[0].Label)
		assert.Equal(t, "About", links[1].Label)
	})

	t.Run("membership is exact and case-sensitive", func(t *testing.T) {
		assert.Empty(t, r.NavLinks("Main"))
		assert.Empty(t, r.NavLinks("mai"))
	})

	t.Run("entry without navs is never returned", func(t *testing.T) {
		for _, nav := range []string{"main", "footer", ""} {
			for _, link := range r.NavLinks(nav) {
				assert.NotEqual(t, "Admin", link.Label)
			}
		}
	})

	t.Run("unknown nav yields an empty result", func(t *testing.T) {
		assert.Empty(t, r.NavLinks("sidebar"))
	})
}

func TestGroupPaths(t *testing.T) {
	r := New()
	r.Register("profile", staticPath("/profile"), "Profile", WithGroup("user"))
	r.Register("settings", staticPath("/settings"), "Settings", WithGroup("user"))
	r.Register("home", staticPath("/"), "Home", WithNavs("main"))

	t.Run("returns exactly the group members", func(t *testing.T) {
		links := r.GroupPaths("user")
		require.Len(t, links, 2)
		assert.Equal(t, "Profile", links[0].Label)
		assert.Equal(t, "Settings", links[1].Label)
	})

	t.Run("unknown group yields an empty result", func(t *testing.T) {
		assert.Empty(t, r.GroupPaths("billing"))
	})

	t.Run("ungrouped entries never match, even an empty query", func(t *testing.T) {
		assert.Empty(t, r.GroupPaths(""))
	})
}

func TestAllSnapshot(t *testing.T) {
	r := New()
	r.Register("home", staticPath("/"), "Home", WithNavs("main"))

	snapshot := r.All()

	t.Run("mutating the snapshot does not touch the registry", func(t *testing.T) {
		entry := snapshot["home"]
		entry.Label = "Hacked"
		entry.Navs[0] = "hacked"
		snapshot["home"] = entry
		delete(snapshot, "home")

		link, ok := r.Get("home")
		require.True(t, ok)
		assert.Equal(t, "Home", link.Label)
		require.Len(t, r.NavLinks("main"), 1)
		assert.Empty(t, r.NavLinks("hacked"))
	})

	t.Run("later registrations do not appear retroactively", func(t *testing.T) {
		r.Register("about", staticPath("/about"), "About")
		_, ok := snapshot["about"]
		assert.False(t, ok)
	})

	t.Run("mutating the navs slice passed to Register is inert", func(t *testing.T) {
		navs := []string{"main"}
		r.Register("docs", staticPath("/docs"), "Docs", WithNavs(navs...))
		navs[0] = "footer"
		require.Len(t, r.NavLinks("main"), 2)
	})
}

// TestNavigationScenario walks the typical usage end to end: register during
// startup, then build navigation from the queries.
func TestNavigationScenario(t *testing.T) {
	r := New()
	r.Register("home", staticPath("/"), "Home", WithNavs("main"))
	r.Register("profile", func(args ...any) string {
		return fmt.Sprintf("/user/%v", args[0])
	}, "Profile", WithNavs("main"), WithGroup("user"))

	main := r.NavLinks("main")
	require.Len(t, main, 2)
	assert.Equal(t, "Home", main[0].Label)
	assert.Equal(t, "Profile", main[1].Label)

	user := r.GroupPaths("user")
	require.Len(t, user, 1)
	assert.Equal(t, "Profile", user[0].Label)

	home, ok := r.Get("home")
	require.True(t, ok)
	assert.Equal(t, "/", home.Path())

	profile, ok := r.Get("profile")
	require.True(t, ok)
	assert.Equal(t, "/user/42", profile.Path("42"))

	_, ok = r.Get("missing")
	assert.False(t, ok)
}
