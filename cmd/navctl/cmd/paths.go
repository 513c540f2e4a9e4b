package cmd

import (
	"github.com/spf13/cobra"
)

// pathsCmd is the parent for path registry inspection commands.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Inspect the application's path registry",
	Long: `Commands for inspecting the paths the application modules register.

These commands run the modules' registration phase without starting the
HTTP server, so the output reflects exactly what a running server would
have in its registry.`,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
