// Package display formats path registry listings for the CLI.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PathDisplay represents one registered path for display purposes. Example
// holds the path function's zero-argument rendering; parameterized paths are
// free to return a placeholder for it.
type PathDisplay struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Navs    []string `json:"navs,omitempty"`
	Group   string   `json:"group,omitempty"`
	Example string   `json:"example"`
}

// Table writes the paths in a formatted table.
func Table(w io.Writer, paths []PathDisplay) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "KEY\tLABEL\tNAVS\tGROUP\tEXAMPLE")
	fmt.Fprintln(tw, "---\t-----\t----\t-----\t-------")

	if len(paths) == 0 {
		fmt.Fprintln(tw, "No paths found")
		return
	}

	for _, p := range paths {
		navs := strings.Join(p.Navs, ",")
		if navs == "" {
			navs = "-"
		}
		group := p.Group
		if group == "" {
			group = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Key,
			truncateString(p.Label, 30),
			navs,
			group,
			truncateString(p.Example, 40))
	}
}

// JSON writes the paths as indented JSON.
func JSON(w io.Writer, paths []PathDisplay) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(paths)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
