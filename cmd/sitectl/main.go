package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the site maintenance tool.
var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Maintenance commands for the Ruta Bikini sales page",
	Long: `sitectl checks the page content and renders the landing page without
starting the server.

Examples:
  sitectl check                  # validate content and configuration
  sitectl render --out index.html`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
