// Package cmd implements the CLI commands for the listing-finder server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "listing-finder",
	Short: "Search eBay for cheap listings by total cost",
	Long: "An API service that searches eBay listings by category and search term, " +
		"normalizes the results, and ranks them by total cost (price plus shipping) " +
		"under a user-supplied ceiling.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
