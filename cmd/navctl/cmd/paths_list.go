package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/nfrund/waypoint/cmd/navctl/internal/display"
	"github.com/nfrund/waypoint/internal/config"
	"github.com/nfrund/waypoint/internal/server"
	"github.com/nfrund/waypoint/pathreg"
	"github.com/spf13/cobra"
)

var (
	listOutputFormat string
	listNavFilter    string
	listGroupFilter  string
)

// pathsListCmd represents the paths list command
var pathsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered paths",
	Long: `List all paths the application modules register.

Examples:
  navctl paths list                    # List all paths in table format
  navctl paths list --format json      # List all paths in JSON format
  navctl paths list --nav main         # Only paths in the "main" nav list
  navctl paths list --group user       # Only paths in the "user" group

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
	Run: pathsListHandler,
}

func pathsListHandler(cmd *cobra.Command, args []string) {
	cfg := config.New()

	// Run only the registration phase; no routes, no server.
	paths := pathreg.New()
	for _, m := range server.AppModules(cfg) {
		if err := m.Register(paths); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to register paths for module %s: %v\n", m.Name(), err)
			os.Exit(1)
		}
	}

	entries := paths.All()
	var rows []display.PathDisplay
	for _, key := range paths.Keys() {
		entry := entries[key]
		if listNavFilter != "" && !slices.Contains(entry.Navs, listNavFilter) {
			continue
		}
		if listGroupFilter != "" && entry.Group != listGroupFilter {
			continue
		}
		rows = append(rows, display.PathDisplay{
			Key:     entry.Key,
			Label:   entry.Label,
			Navs:    entry.Navs,
			Group:   entry.Group,
			Example: entry.Path(),
		})
	}

	switch listOutputFormat {
	case "json":
		if err := display.JSON(os.Stdout, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to encode paths: %v\n", err)
			os.Exit(1)
		}
	case "table":
		display.Table(os.Stdout, rows)
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown output format %q (want table or json)\n", listOutputFormat)
		os.Exit(1)
	}
}

func init() {
	pathsListCmd.Flags().StringVar(&listOutputFormat, "format", "table", "Output format: table or json")
	pathsListCmd.Flags().StringVar(&listNavFilter, "nav", "", "Only show paths in the named nav list")
	pathsListCmd.Flags().StringVar(&listGroupFilter, "group", "", "Only show paths in the named group")
	pathsCmd.AddCommand(pathsListCmd)
}
