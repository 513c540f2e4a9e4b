// Package pathreg provides a small in-memory registry that maps string keys
// to path-generating callables and their display metadata. Applications
// register paths once during startup and query them afterwards to build
// navigation lists, grouped link sets, or individual hrefs.
//
// The registry is deliberately not a router: it never parses, matches, or
// validates the strings its path functions produce. It only stores callables
// and metadata and hands them back.
package pathreg

import (
	"slices"
	"sync"
)

// PathFunc generates a URL path. Arguments are chosen by the caller at
// invocation time (typically strings or numbers, possibly none); the registry
// never invokes or inspects the function itself.
type PathFunc func(args ...any) string

// Entry is the full stored record for one registered path.
type Entry struct {
	Key   string
	Path  PathFunc
	Label string
	Navs  []string
	Group string
}

// NavLink is the reduced projection of an Entry returned by query operations.
// It omits the key and nav-list membership, which callers building links
// don't need.
type NavLink struct {
	Path  PathFunc
	Label string
	Group string
}

// Option configures optional fields of a registration.
type Option func(*Entry)

// WithNavs adds the entry to the named navigation lists (e.g. "main",
// "footer").
func WithNavs(navs ...string) Option {
	return func(e *Entry) {
		e.Navs = navs
	}
}

// WithGroup assigns the entry to a named group (e.g. "user"). The empty
// string leaves the entry ungrouped.
func WithGroup(group string) Option {
	return func(e *Entry) {
		e.Group = group
	}
}

// Registry is a keyed store of path entries. The zero value is not usable;
// create one with New. All methods are safe for concurrent use, though the
// expected pattern is that every Register call completes during application
// startup, before any reader exists.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// New creates an empty path registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register stores a path entry under key, silently replacing any previous
// entry for the same key. A replaced key keeps its original position in the
// registration order. The path function is stored as-is; no validation of
// its arity or output is performed.
func (r *Registry) Register(key string, fn PathFunc, label string, opts ...Option) {
	entry := Entry{
		Key:   key,
		Path:  fn,
		Label: label,
	}
	for _, opt := range opts {
		opt(&entry)
	}
	// Copy the navs so later mutation of the caller's slice can't reach
	// stored state.
	entry.Navs = slices.Clone(entry.Navs)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = entry
}

// NavLinks returns one NavLink per entry whose nav lists contain nav
// (case-sensitive), in registration order. No match yields an empty slice,
// not an error. Entries registered without navs are never returned.
func (r *Registry) NavLinks(nav string) []NavLink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var links []NavLink
	for _, key := range r.order {
		entry := r.entries[key]
		if slices.Contains(entry.Navs, nav) {
			links = append(links, project(entry))
		}
	}
	return links
}

// GroupPaths returns one NavLink per entry whose group equals group, in
// registration order. The empty string never matches: ungrouped entries are
// not addressable through this query.
func (r *Registry) GroupPaths(group string) []NavLink {
	if group == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var links []NavLink
	for _, key := range r.order {
		entry := r.entries[key]
		if entry.Group == group {
			links = append(links, project(entry))
		}
	}
	return links
}

// Get returns the NavLink projection for key. The boolean reports whether an
// entry exists; a miss is a normal outcome, not an error.
func (r *Registry) Get(key string) (NavLink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key]
	if !ok {
		return NavLink{}, false
	}
	return project(entry), true
}

// All returns an independent snapshot of the full registry state. Later
// registrations do not appear in a snapshot already returned, and mutating
// the snapshot (including its Navs slices) does not affect the registry.
func (r *Registry) All() map[string]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Entry, len(r.entries))
	for key, entry := range r.entries {
		entry.Navs = slices.Clone(entry.Navs)
		snapshot[key] = entry
	}
	return snapshot
}

// Keys returns the registered keys in registration order. Combine with All
// when full entries are needed in a deterministic order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func project(e Entry) NavLink {
	return NavLink{
		Path:  e.Path,
		Label: e.Label,
		Group: e.Group,
	}
}
