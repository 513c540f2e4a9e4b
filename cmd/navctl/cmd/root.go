package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navctl",
	Short: "Waypoint CLI tool",
	Long: `navctl is a command-line interface for the Waypoint path registry.

Available commands:
  paths list    Discover and list the paths the application modules register

Use "navctl [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
